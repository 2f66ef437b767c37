package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/chzyer/readline"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"admin-console/internal/apiclient"
	"admin-console/internal/config"
	"admin-console/internal/console"
	"admin-console/internal/navigation"
	"admin-console/internal/session"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.LoadConsoleConfig()
	if err != nil {
		log.Fatal(err)
	}

	// Solo avisos: el REPL comparte la terminal con el log.
	logCfg := zap.NewDevelopmentConfig()
	logCfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	logger, err := logCfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, closeStore, err := openStore(ctx, cfg, logger)
	if err != nil {
		logger.Fatal("open session store", zap.Error(err))
	}
	defer closeStore()

	if err := os.MkdirAll(cfg.DataDir, 0o700); err != nil {
		logger.Fatal("create data dir", zap.Error(err))
	}
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "admin-console> ",
		HistoryFile:     filepath.Join(cfg.DataDir, "history"),
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		logger.Fatal("init readline", zap.Error(err))
	}
	defer rl.Close()

	table, err := navigation.NewTable(navigation.DefaultRoutes())
	if err != nil {
		logger.Fatal("route table", zap.Error(err))
	}
	router := navigation.NewRouter(table, navigation.NewGuard(store), logger)

	out := rl.Stdout()
	expiry := apiclient.NewSessionExpiry(store, console.NewDialog(rl, out, router), router, logger)
	httpClient := &http.Client{Timeout: time.Duration(cfg.HTTPTimeoutSeconds) * time.Second}
	client := apiclient.NewClient(cfg.APIBaseURL, httpClient, store, expiry, logger)

	shell := console.New(rl, out, client, router, store, logger)
	fmt.Fprintf(out, "admin-console connected to %s. Type 'help' for commands.\n", client.BaseURL())
	if err := shell.Start(ctx, cfg.StartPath); err != nil {
		fmt.Fprintf(out, "error: %v\n", err)
	}
	if err := shell.Run(ctx); err != nil && ctx.Err() == nil {
		logger.Error("console stopped", zap.Error(err))
	}
}

// openStore elige donde vive el token segun CONSOLE_SESSION_STORE.
func openStore(ctx context.Context, cfg *config.ConsoleConfig, logger *zap.Logger) (session.Store, func(), error) {
	switch strings.ToLower(cfg.SessionStore) {
	case "memory":
		return session.NewMemoryStore(), func() {}, nil
	case "redis":
		if cfg.RedisAddr == "" {
			return nil, nil, fmt.Errorf("CONSOLE_SESSION_STORE=redis requires REDIS_ADDR")
		}
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		ctxPing, cancel := context.WithTimeout(ctx, 2*time.Second)
		defer cancel()
		if err := client.Ping(ctxPing).Err(); err != nil {
			_ = client.Close()
			return nil, nil, fmt.Errorf("redis ping: %w", err)
		}
		return session.NewRedisStore(client, cfg.RedisNamespace, 0), func() { _ = client.Close() }, nil
	case "sqlite", "":
		store, err := session.NewSQLiteStore(cfg.DataDir, "session.db")
		if err != nil {
			return nil, nil, err
		}
		return store, func() {
			if err := store.Close(); err != nil {
				logger.Warn("close session store", zap.Error(err))
			}
		}, nil
	default:
		return nil, nil, fmt.Errorf("unknown session store %q", cfg.SessionStore)
	}
}
