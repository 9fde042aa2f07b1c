package main

import (
	"context"
	"errors"
	"fmt"

	"github.com/joho/godotenv"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/rafaelnuansa/faculty-backend/internal/config"
	"github.com/rafaelnuansa/faculty-backend/internal/db"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/model"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
)

func main() {
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	logger.Info().Msg("starting seed script")

	gormDB, err := db.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations to ensure schema is up to date
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("failed to run migrations")
	}

	userRepo := repository.NewUserRepository(gormDB)
	created, err := seedAdmin(context.Background(), userRepo, cfg.SeedAdminName, cfg.SeedAdminEmail, cfg.SeedAdminPassword)
	if err != nil {
		logger.Fatal().Err(err).Msg("failed to seed admin user")
	}

	if created {
		logger.Info().Str("email", cfg.SeedAdminEmail).Msg("admin user created")
	} else {
		logger.Info().Str("email", cfg.SeedAdminEmail).Msg("admin user already exists, left unchanged")
	}
}

// seedAdmin creates the administrator unless a user with that email exists.
func seedAdmin(ctx context.Context, repo repository.UserRepository, name, email, password string) (bool, error) {
	_, err := repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return false, fmt.Errorf("check user %s: %w", email, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return false, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{Name: name, Email: email, PasswordHash: string(hash)}
	if err := repo.Create(ctx, user); err != nil {
		return false, fmt.Errorf("create user %s: %w", email, err)
	}
	return true, nil
}
