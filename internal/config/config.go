package config

import (
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v10"
)

// Config centraliza la configuracion del backend de administracion.
type Config struct {
	HTTPPort            string `env:"HTTP_PORT" envDefault:"8080"`
	DatabaseURL         string `env:"DATABASE_URL,required,notEmpty"`
	MigrateOnStart      bool   `env:"MIGRATE_ON_START" envDefault:"true"`
	DBMaxConns          int32  `env:"DB_MAX_CONNS" envDefault:"4"`
	DBConnectTimeoutSec int    `env:"DB_CONNECT_TIMEOUT_SECONDS" envDefault:"5"`
	JWTSecret           string `env:"JWT_SECRET,required,notEmpty"`
	JWTAccessTTLMinutes int    `env:"JWT_ACCESS_TTL_MINUTES" envDefault:"60"`
	LoginMaxAttempts    int    `env:"LOGIN_MAX_ATTEMPTS" envDefault:"5"`
	LoginWindowMinutes  int    `env:"LOGIN_WINDOW_MINUTES" envDefault:"10"`
	RedisAddr           string `env:"REDIS_ADDR"`
	RedisPassword       string `env:"REDIS_PASSWORD"`
	RedisDB             int    `env:"REDIS_DB" envDefault:"0"`
}

// ConsoleConfig configura la consola. BACKEND_API_BASE_URL se lee una vez al arrancar.
type ConsoleConfig struct {
	APIBaseURL         string `env:"BACKEND_API_BASE_URL,required,notEmpty"`
	HTTPTimeoutSeconds int    `env:"HTTP_TIMEOUT_SECONDS" envDefault:"30"`
	SessionStore       string `env:"CONSOLE_SESSION_STORE" envDefault:"sqlite"`
	DataDir            string `env:"CONSOLE_DATA_DIR"`
	StartPath          string `env:"CONSOLE_START_PATH" envDefault:"/user"`
	RedisAddr          string `env:"REDIS_ADDR"`
	RedisPassword      string `env:"REDIS_PASSWORD"`
	RedisDB            int    `env:"REDIS_DB" envDefault:"0"`
	RedisNamespace     string `env:"CONSOLE_REDIS_NAMESPACE" envDefault:"console"`
}

// LoadConfig carga la configuracion del backend desde variables de entorno.
func LoadConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadConsoleConfig carga la configuracion de la consola. Sin CONSOLE_DATA_DIR
// se usa <UserConfigDir>/admin-console.
func LoadConsoleConfig() (*ConsoleConfig, error) {
	var cfg ConsoleConfig
	if err := env.Parse(&cfg); err != nil {
		return nil, err
	}
	if cfg.DataDir == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			dir = "."
		}
		cfg.DataDir = filepath.Join(dir, "admin-console")
	}
	return &cfg, nil
}
