package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"admin-console/internal/service"
)

// NewRouter configura el router de Gin con middlewares y rutas de la API de administracion.
func NewRouter(
	logger *zap.Logger,
	metrics *Metrics,
	jwtSvc *service.JWTService,
	authH *AuthHandler,
	directoryH *DirectoryHandler,
) *gin.Engine {
	if logger == nil {
		logger = zap.NewNop()
	}
	if metrics == nil {
		metrics = NewMetrics()
	}

	r := gin.New()

	// Middlewares basicos: logging, recovery, metricas y JSON content-type.
	r.Use(zapLoggerMiddleware(logger), gin.Recovery(), metrics.Middleware())

	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := r.Group("/")
	api.Use(jsonContentTypeMiddleware())
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	auth := api.Group("/auth")
	auth.POST("/login", authH.Login)
	auth.POST("/logout", JWTAuthMiddleware(jwtSvc), authH.Logout)

	protected := api.Group("/")
	protected.Use(JWTAuthMiddleware(jwtSvc))
	protected.GET("/me", authH.Me)
	protected.GET("/accounts", directoryH.ListAccounts)
	protected.GET("/feedback", directoryH.ListFeedback)

	return r
}

// zapLoggerMiddleware crea un middleware simple de logging con zap.
func zapLoggerMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		latency := time.Since(start)
		logger.Info("request",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Int("status", c.Writer.Status()),
			zap.Duration("latency", latency),
			zap.String("client_ip", c.ClientIP()),
		)
	}
}

// jsonContentTypeMiddleware fuerza Content-Type: application/json en responses.
func jsonContentTypeMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Writer.Header().Set("Content-Type", "application/json")
		c.Next()
	}
}
