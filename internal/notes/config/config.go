// Package config содержит конфигурацию сервиса заметок.
package config

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	pkgconfig "notepad/pkg/config"
	"notepad/pkg/logger"
)

// ServiceName - имя сервиса в логах.
const ServiceName = "notes"

// Константы сообщений.
const (
	LogConfigLoaded     = "notes configuration"
	ErrFailedLoadConfig = "failed to load notes configuration"
)

// Config представляет полную конфигурацию сервиса заметок.
type Config struct {
	Postgres   PostgresConfig   `yaml:"postgres"`
	HTTP       HTTPConfig       `yaml:"http"`
	Logging    LoggingConfig    `yaml:"logging"`
	Shutdown   ShutdownConfig   `yaml:"shutdown"`
	Migrations MigrationsConfig `yaml:"migrations"`
}

// Load загружает конфигурацию из deploy/.env (если есть) и переменных окружения.
func Load(ctx context.Context) (*Config, error) {
	return LoadFrom(ctx, pkgconfig.DefaultEnvPath)
}

// LoadFrom загружает конфигурацию, используя указанный .env файл.
func LoadFrom(ctx context.Context, envPath string) (*Config, error) {
	cfg, err := pkgconfig.Load[Config](ctx, ServiceName, envPath)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrFailedLoadConfig, err)
	}

	logger.Log(ctx).Info(ctx, LogConfigLoaded,
		zap.String("http_address", cfg.HTTP.GetAddress()),
		zap.String("postgres_host", cfg.Postgres.Host),
		zap.Int("postgres_port", cfg.Postgres.Port),
		zap.String("postgres_db", cfg.Postgres.Database),
		zap.Bool("postgres_url_override", cfg.Postgres.URL != ""),
		zap.String("log_level", cfg.Logging.Level),
		zap.String("log_mode", cfg.Logging.Mode),
		zap.Int("shutdown_timeout_seconds", cfg.Shutdown.Timeout),
		zap.String("migrations_dir", cfg.Migrations.Dir))

	return cfg, nil
}
