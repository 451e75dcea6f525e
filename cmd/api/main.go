// Package main is the entry point for the booking API.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/config"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/handlers"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/repository"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/routes"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/service"
	redisclient "github.com/AbrahamF2022/Show-Stoppers-Academy/pkg/redis"
	"github.com/gin-gonic/gin"
	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	goredis "github.com/redis/go-redis/v9"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	cfg := config.Load()
	logger := setupLogger(cfg.Environment)
	slog.SetDefault(logger)

	if err := runMigrations(cfg); err != nil {
		logger.Error("failed to run migrations", "error", err)
		os.Exit(1)
	}

	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	var redisClient *goredis.Client
	if cfg.RedisHost != "" {
		redisClient, err = redisclient.NewClient(context.Background(), cfg)
		if err != nil {
			logger.Error("failed to connect to redis", "error", err)
			os.Exit(1)
		}
	} else {
		logger.Info("redis not configured, logout denylist disabled")
	}

	userRepo := repository.NewUserRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	auditRepo := repository.NewAuditRepository(db)

	jwtService := service.NewJWTService(cfg.JWTSecret, cfg.JWTExpiry)
	if jwtService == nil {
		logger.Error("JWT_SECRET must be at least 32 bytes")
		os.Exit(1)
	}
	authService := service.NewAuthService(userRepo, jwtService, redisClient, logger)
	sessionService := service.NewSessionService(sessionRepo, auditRepo, logger)

	authHandler := handlers.NewAuthHandler(authService)
	sessionHandler := handlers.NewSessionHandler(sessionService)
	healthHandler := handlers.NewHealthHandler()

	if cfg.Environment != "development" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	routes.Setup(router, cfg, authService, authHandler, sessionHandler, healthHandler)

	logger.Info("starting booking api", "port", cfg.Port, "env", cfg.Environment)
	if err := router.Run(fmt.Sprintf(":%s", cfg.Port)); err != nil {
		logger.Error("failed to start server", "error", err)
		os.Exit(1)
	}
}

func runMigrations(cfg *config.Config) error {
	m, err := migrate.New("file://"+cfg.MigrationsPath, cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("failed to open migrations: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case "development":
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))
	default:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
			Level: slog.LevelInfo,
		}))
	}
}
