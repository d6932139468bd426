package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/VeerKakar17/calendar-todo-list/config"
	"github.com/VeerKakar17/calendar-todo-list/db"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/handler"
	repo "github.com/VeerKakar17/calendar-todo-list/internal/todo/repository/postgres"
	"github.com/VeerKakar17/calendar-todo-list/internal/todo/service"
	"github.com/gofiber/fiber/v2"
)

const shutdownTimeout = 10 * time.Second

func main() {
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	cfg := config.Load()

	ctx := context.Background()

	pool, err := db.NewPostgresPool(ctx, cfg.DBURL)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := db.RunMigrations(ctx, cfg.DBURL); err != nil {
		logger.Error("failed to apply migrations", "error", err)
		os.Exit(1)
	}

	userRepo := repo.NewPostgresUserRepository(pool)
	taskRepo := repo.NewPostgresTaskRepository(pool)

	hasher := service.NewPasswordHasher(cfg.BcryptCost)
	tokenService := service.NewTokenService(cfg.TokenSecret, cfg.TokenKeyID, cfg.AccessExpiryMin, cfg.RefreshExpiryMin)
	sessionService := service.NewSessionService(tokenService)
	userService := service.NewUserService(userRepo, hasher, tokenService)
	taskService := service.NewTaskService(taskRepo, userRepo)

	cookies := handler.NewCookieWriter(cfg)
	authHandler := handler.NewAuthHandler(userService, cookies)
	taskHandler := handler.NewTaskHandler(taskService)

	app := fiber.New()
	handler.RegisterRoutes(app, authHandler, taskHandler, handler.RequireSession(sessionService, cookies))

	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit

		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.Error("shutdown error", "error", err)
		}
	}()

	logger.Info("starting server", "port", cfg.Port, "env", cfg.Env)

	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
