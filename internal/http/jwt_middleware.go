package http

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"admin-console/internal/service"
)

const (
	authClaimsKey = "auth_claims"

	// AuthenticationHeader lleva el token crudo, tal como lo envia la consola.
	AuthenticationHeader = "Authentication"
)

// JWTAuthMiddleware valida el token de sesion y guarda claims en el contexto.
func JWTAuthMiddleware(jwtSvc *service.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		if jwtSvc == nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "jwt not configured"})
			c.Abort()
			return
		}

		token := tokenFromRequest(c)
		if token == "" {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "missing token"})
			c.Abort()
			return
		}

		claims, err := jwtSvc.Parse(token)
		if err != nil {
			msg := "invalid token"
			switch {
			case errors.Is(err, service.ErrJWTExpired):
				msg = "token expired"
			case errors.Is(err, service.ErrJWTRevoked):
				msg = "token revoked"
			}
			c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
			c.Abort()
			return
		}

		c.Set(authClaimsKey, claims)
		c.Next()
	}
}

// tokenFromRequest prioriza Authentication y acepta Authorization: Bearer.
func tokenFromRequest(c *gin.Context) string {
	if raw := strings.TrimSpace(c.GetHeader(AuthenticationHeader)); raw != "" {
		return raw
	}
	header := strings.TrimSpace(c.GetHeader("Authorization"))
	if len(header) > len("bearer ") && strings.EqualFold(header[:len("bearer ")], "bearer ") {
		return strings.TrimSpace(header[len("bearer "):])
	}
	return ""
}

// GetAuthClaims obtiene claims de JWT desde el contexto.
func GetAuthClaims(c *gin.Context) (service.Claims, bool) {
	val, ok := c.Get(authClaimsKey)
	if !ok {
		return service.Claims{}, false
	}
	claims, ok := val.(service.Claims)
	return claims, ok
}
