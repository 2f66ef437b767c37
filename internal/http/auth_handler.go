package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-console/internal/domain"
	"admin-console/internal/service"
)

// AuthHandler mantiene dependencias para login, logout y perfil del operador.
type AuthHandler struct {
	logger   *zap.Logger
	authServ *service.AuthService
}

// NewAuthHandler crea una instancia de AuthHandler con dependencias necesarias.
func NewAuthHandler(logger *zap.Logger, authServ *service.AuthService) *AuthHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthHandler{logger: logger, authServ: authServ}
}

// Login maneja POST /auth/login.
// Credenciales invalidas responden 400: 401 queda reservado para sesiones caducadas.
func (h *AuthHandler) Login(c *gin.Context) {
	var req domain.Credentials
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warn("invalid login request", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	result, err := h.authServ.Login(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid credentials"})
		case errors.Is(err, service.ErrRateLimited):
			c.JSON(http.StatusTooManyRequests, gin.H{"error": "too many requests"})
		default:
			h.logger.Error("login failed", zap.Error(err))
			c.JSON(http.StatusInternalServerError, gin.H{"error": "could not login"})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Logout maneja POST /auth/logout.
func (h *AuthHandler) Logout(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}
	if err := h.authServ.Logout(claims); err != nil {
		h.logger.Error("logout failed", zap.Error(err), zap.String("admin_id", claims.AdminID))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "logged_out"})
}

// Me maneja GET /me y devuelve el operador con la forma de Account.
func (h *AuthHandler) Me(c *gin.Context) {
	claims, ok := GetAuthClaims(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
		return
	}

	admin, err := h.authServ.Me(c.Request.Context(), claims)
	if err != nil {
		if errors.Is(err, service.ErrAdminNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "admin not found"})
			return
		}
		h.logger.Error("load admin failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not load admin"})
		return
	}

	nickname := admin.DisplayName
	if nickname == "" {
		nickname = admin.Username
	}
	c.JSON(http.StatusOK, domain.Account{AccountID: admin.ID, Nickname: nickname})
}
