// Command server runs the event catalog HTTP API.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"eventlane/config"
	"eventlane/internal/adapters/email"
	delivery "eventlane/internal/delivery/http"
	"eventlane/internal/delivery/http/controllers"
	"eventlane/internal/delivery/http/middleware"
	"eventlane/internal/repository/memory"
	"eventlane/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)

	// All state lives in this store for the lifetime of the process.
	store := memory.NewStore()

	mailer := email.NewMailer(email.Config{
		Provider:        cfg.EmailProvider,
		FromAddress:     cfg.EmailFromAddress,
		FromName:        cfg.EmailFromName,
		Region:          cfg.SESRegion,
		AccessKeyID:     cfg.SESAccessKeyID,
		SecretAccessKey: cfg.SESSecretKey,
	}, logger)

	categorySvc := services.NewCategoryService(memory.NewCategoryRepository(store))
	eventSvc := services.NewEventService(memory.NewEventRepository(store))
	attendeeSvc := services.NewAttendeeService(memory.NewEventAttendeeRepository(store))
	favoriteSvc := services.NewFavoriteService(memory.NewFavoriteRepository(store))
	userSvc := services.NewUserService(memory.NewUserRepository(store))
	newsletterSvc := services.NewNewsletterService(memory.NewNewsletterRepository(store), mailer, logger)

	mux := delivery.NewRouter(
		controllers.NewCategoryController(logger, categorySvc),
		controllers.NewEventController(logger, eventSvc),
		controllers.NewAttendeeController(logger, attendeeSvc),
		controllers.NewFavoriteController(logger, favoriteSvc),
		controllers.NewUserController(logger, userSvc),
		controllers.NewNewsletterController(logger, newsletterSvc),
	)
	handler := middleware.CORS(cfg.AllowedOrigins, middleware.Logging(logger, mux))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      handler,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "err", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", "err", err)
	}
	logger.Info("server stopped")
}
