package main

import (
	"context"
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"admin-console/internal/config"
	"admin-console/internal/db"
	"admin-console/internal/repository"
	"admin-console/internal/service"
)

// seed da de alta un operador: seed -username root -password ... [-name "Root"]
func main() {
	_ = godotenv.Load()

	username := flag.String("username", "", "operator username")
	password := flag.String("password", os.Getenv("SEED_ADMIN_PASSWORD"), "operator password (or SEED_ADMIN_PASSWORD)")
	displayName := flag.String("name", "", "display name")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal(err)
	}

	logger, _ := zap.NewProduction()
	defer logger.Sync()

	ctx := context.Background()
	if err := db.Migrate(cfg.DatabaseURL); err != nil {
		logger.Fatal("db migrate", zap.Error(err))
	}
	pool, err := db.NewPool(ctx, cfg)
	if err != nil {
		logger.Fatal("db connect", zap.Error(err))
	}
	defer pool.Close()

	authSvc := service.NewAuthService(logger, repository.NewPgAdminRepository(pool), nil, nil)
	admin, err := authSvc.CreateAdmin(ctx, *username, *displayName, *password)
	if err != nil {
		logger.Fatal("create admin", zap.Error(err))
	}
	logger.Info("admin created", zap.String("admin_id", admin.ID), zap.String("username", admin.Username))
}
