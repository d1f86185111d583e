package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-scales-backend/config"
	v1 "go-scales-backend/internal/delivery/http/v1"
	"go-scales-backend/internal/repository/memory"
	"go-scales-backend/internal/usecase"
	"go-scales-backend/pkg/email"
	"go-scales-backend/pkg/logger"
	"go-scales-backend/pkg/redis"
	"go-scales-backend/pkg/validation"

	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketing site backend", "port", cfg.Port)

	// 3. Setup Redis (optional, rate limiting backend)
	if err := redis.Initialize(redis.Config{URL: cfg.RedisURL, Password: cfg.RedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()

	// 4. Setup Mail Dispatcher
	mailService := email.NewService(email.Config{
		Host:      cfg.SMTPHost,
		Port:      cfg.SMTPPort,
		Username:  cfg.SMTPUsername,
		Password:  cfg.SMTPPassword,
		FromEmail: cfg.SMTPFromEmail,
		ToEmail:   cfg.ContactEmailTo,
	})
	if err := mailService.ConfigError(); err != nil {
		logger.Log.Warn("Email service not fully configured - contact form will be unavailable", "error", err)
	}

	// 5. Setup Repositories
	productRepo := memory.NewProductRepository()

	// 6. Setup UseCases
	validate := validator.New()
	validation.Register(validate)
	contactUC := usecase.NewContactUsecase(mailService, validate)
	productUC := usecase.NewProductUsecase(productRepo)

	// 7. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		ContactUC: contactUC,
		ProductUC: productUC,
		Config:    cfg,
	})

	// 8. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
