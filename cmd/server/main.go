package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rafaelnuansa/faculty-backend/docs"
	"github.com/rafaelnuansa/faculty-backend/internal/auth"
	"github.com/rafaelnuansa/faculty-backend/internal/cache"
	"github.com/rafaelnuansa/faculty-backend/internal/config"
	"github.com/rafaelnuansa/faculty-backend/internal/db"
	"github.com/rafaelnuansa/faculty-backend/internal/handler"
	"github.com/rafaelnuansa/faculty-backend/internal/logger"
	"github.com/rafaelnuansa/faculty-backend/internal/repository"
	"github.com/rafaelnuansa/faculty-backend/internal/router"
	"github.com/rafaelnuansa/faculty-backend/internal/service"
	"github.com/rafaelnuansa/faculty-backend/internal/storage"
	"github.com/rafaelnuansa/faculty-backend/internal/validation"
)

const shutdownTimeout = 10 * time.Second

// @title Faculty Backend API
// @version 1.0
// @description Admin API for the campus site: categories, posts, faculties, users and dashboard.
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// A missing .env is fine; the environment may be set by the process manager.
	_ = godotenv.Load()
	cfg := config.Load()
	logger.Configure(logger.Config{Level: cfg.LogLevel, Pretty: cfg.LogPretty})

	gormDB, err := db.Open(cfg)
	if err != nil {
		logger.Fatal().Err(err).Msg("database init")
	}

	if cfg.ResetDB {
		logger.Warn().Msg("RESET_DB=true detected, dropping all tables")
		db.Reset(gormDB)
	}
	if err := db.Migrate(gormDB); err != nil {
		logger.Fatal().Err(err).Msg("auto-migrate")
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()
	if err := cacheClient.Ping(context.Background()); err != nil {
		logger.Warn().Err(err).Msg("redis unreachable, logout revocation is disabled until it recovers")
	}

	images, err := storage.NewLocalImageStore(cfg.UploadDir)
	if err != nil {
		logger.Fatal().Err(err).Msg("image storage init")
	}

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(gormDB)
	postRepo := repository.NewPostRepository(gormDB)
	facultyRepo := repository.NewFacultyRepository(gormDB)
	userRepo := repository.NewUserRepository(gormDB)

	// Initialize auth components
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	tokenStore := auth.NewTokenStore(cacheClient)

	// Initialize services
	validator := validation.New()
	authService := service.NewAuthService(userRepo, jwtService, tokenStore)
	categoryService := service.NewCategoryService(categoryRepo, validator)
	postService := service.NewPostService(postRepo, categoryRepo, userRepo, facultyRepo, images, validator)
	facultyService := service.NewFacultyService(facultyRepo, validator)
	userService := service.NewUserService(userRepo, facultyRepo, validator)
	dashboardService := service.NewDashboardService(categoryRepo, postRepo, facultyRepo, userRepo)

	if cfg.SwaggerHost != "" {
		docs.SwaggerInfo.Host = strings.TrimPrefix(strings.TrimPrefix(cfg.SwaggerHost, "https://"), "http://")
	}

	e := echo.New()
	e.HideBanner = true
	router.Register(e, cfg, router.Handlers{
		Auth:      handler.NewAuthHandler(authService),
		Dashboard: handler.NewDashboardHandler(dashboardService),
		User:      handler.NewUserHandler(userService),
		Faculty:   handler.NewFacultyHandler(facultyService),
		Category:  handler.NewCategoryHandler(categoryService),
		Post:      handler.NewPostHandler(postService),
	}, authService)

	logger.Info().Str("url", "http://"+docs.SwaggerInfo.Host+"/swagger/index.html").Msg("swagger documentation available")

	go func() {
		addr := ":" + cfg.ServerPort
		logger.Info().Str("addr", addr).Msg("server starting")
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal().Err(err).Msg("server start")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown")
	}
	logger.Info().Msg("server stopped")
}
