// Command create-admin bootstraps the first admin account. It writes
// directly through the repository so it works before any token exists.
package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"strings"

	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/config"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/models"
	"github.com/AbrahamF2022/Show-Stoppers-Academy/internal/repository"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func main() {
	_ = godotenv.Load()
	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))

	email := strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL")))
	password := os.Getenv("ADMIN_PASSWORD")
	fullName := os.Getenv("ADMIN_NAME")
	if email == "" || password == "" || fullName == "" {
		logger.Error("ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME must be set")
		os.Exit(1)
	}
	if len(password) < 8 {
		logger.Error("ADMIN_PASSWORD must be at least 8 characters")
		os.Exit(1)
	}

	cfg := config.Load()
	db, err := gorm.Open(postgres.Open(cfg.DatabaseURL()), &gorm.Config{
		TranslateError: true,
	})
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	userRepo := repository.NewUserRepository(db)
	ctx := context.Background()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Error("failed to hash password", "error", err)
		os.Exit(1)
	}

	user := &models.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		FullName:     fullName,
		Role:         models.RoleAdmin,
	}

	if err := userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			logger.Info("admin account already exists", "email", email)
			return
		}
		logger.Error("failed to create admin", "error", err)
		os.Exit(1)
	}

	logger.Info("admin account created", "email", email, "user_id", user.ID)
}
