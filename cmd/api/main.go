package main

import (
	"context"
	"log"
	"net/http"
	"time"

	"admin-console/internal/config"
	"admin-console/internal/db"
	apihttp "admin-console/internal/http"
	"admin-console/internal/repository"
	"admin-console/internal/service"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

func main() {
	ctx := context.Background()

	if err := godotenv.Load(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		panic(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	if cfg.MigrateOnStart {
		if err := db.Migrate(cfg.DatabaseURL); err != nil {
			logger.Fatal("db migrate", zap.Error(err))
		}
		logger.Info("migrations applied")
	}

	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()
	if err := db.Ping(ctx, pool); err != nil {
		logger.Fatal("db ping", zap.Error(err))
	}

	adminRepo := repository.NewPgAdminRepository(pool)
	accountRepo := repository.NewPgAccountRepository(pool)
	feedbackRepo := repository.NewPgFeedbackRepository(pool)

	loginWindow := time.Duration(cfg.LoginWindowMinutes) * time.Minute
	var (
		loginLimiter = service.NewLoginRateLimiter(loginWindow, cfg.LoginMaxAttempts)
		revocations  = service.NewMemoryRevocationStore()
	)
	if cfg.RedisAddr != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		defer redisClient.Close()
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		if err := redisClient.Ping(ctxPing).Err(); err != nil {
			logger.Warn("redis ping failed, using in-memory stores", zap.Error(err))
		} else {
			loginLimiter = service.NewRedisLoginRateLimiter(redisClient, loginWindow, cfg.LoginMaxAttempts)
			revocations = service.NewRedisRevocationStore(redisClient)
		}
		cancel()
	}

	jwtSvc := service.NewJWTServiceWithStore(
		cfg.JWTSecret,
		time.Duration(cfg.JWTAccessTTLMinutes)*time.Minute,
		revocations,
	)
	authSvc := service.NewAuthService(logger, adminRepo, jwtSvc, loginLimiter)
	directorySvc := service.NewDirectoryService(accountRepo, feedbackRepo)

	router := apihttp.NewRouter(
		logger,
		apihttp.NewMetrics(),
		jwtSvc,
		apihttp.NewAuthHandler(logger, authSvc),
		apihttp.NewDirectoryHandler(logger, directorySvc),
	)

	server := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server", zap.String("port", cfg.HTTPPort))

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}
