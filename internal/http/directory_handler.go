package http

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-console/internal/domain"
	"admin-console/internal/service"
)

// DirectoryHandler expone los listados paginados de cuentas y feedback.
type DirectoryHandler struct {
	logger *zap.Logger
	dir    *service.DirectoryService
}

func NewDirectoryHandler(logger *zap.Logger, dir *service.DirectoryService) *DirectoryHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &DirectoryHandler{logger: logger, dir: dir}
}

// ListAccounts maneja GET /accounts?page=&size=.
func (h *DirectoryHandler) ListAccounts(c *gin.Context) {
	p, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := h.dir.ListAccounts(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("list accounts failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list accounts"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// ListFeedback maneja GET /feedback?page=&size=.
func (h *DirectoryHandler) ListFeedback(c *gin.Context) {
	p, ok := parsePagination(c)
	if !ok {
		return
	}
	page, err := h.dir.ListFeedback(c.Request.Context(), p)
	if err != nil {
		h.logger.Error("list feedback failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "could not list feedback"})
		return
	}
	c.JSON(http.StatusOK, page)
}

// parsePagination lee page y size; valores ausentes quedan en cero y se normalizan en el servicio.
func parsePagination(c *gin.Context) (domain.Pagination, bool) {
	var p domain.Pagination
	for _, f := range []struct {
		name string
		dst  *int
	}{{"page", &p.CurrentPage}, {"size", &p.PageSize}} {
		raw := c.Query(f.name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + f.name})
			return domain.Pagination{}, false
		}
		*f.dst = n
	}
	return p, true
}
