package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"myShopStack/app/router"
	"myShopStack/business/review"
	"myShopStack/internal/middleware"
	"myShopStack/internal/repository/supabase"
	"myShopStack/internal/rest"
	"myShopStack/internal/validation"
	"myShopStack/pkg/config"
	"myShopStack/pkg/logger"
	"myShopStack/pkg/metrics"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
)

func main() {
	cfg, err := config.Load("reviews-service", "8003")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger.Init(cfg.App.Environment)
	logger.Info("Starting reviews service", "version", cfg.App.Version)

	metrics.Init()

	client, err := supabase.NewClient(cfg.Supabase.URL, cfg.Supabase.Key)
	if err != nil {
		logger.Fatal("Failed to init supabase client", "error", err)
	}

	validate := validation.New()

	reviewRepo := supabase.NewReviewRepository(client)
	reviewService := review.NewService(reviewRepo, validate)
	reviewHandler := rest.NewReviewHandler(reviewService)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.HTTPErrorHandler = middleware.ErrorHandler

	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestIDWithConfig(echomiddleware.RequestIDConfig{
		Generator: uuid.NewString,
	}))
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))
	e.Use(middleware.Metrics("reviews"))

	router.SetupOperationalRoutes(e)

	api := e.Group("/api/reviews")
	router.SetupReviewRoutes(api, reviewHandler)

	go func() {
		addr := fmt.Sprintf(":%s", cfg.Server.Port)
		logger.Info("Server starting", "address", addr)
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Failed to start server", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		logger.Error("Server shutdown error", "error", err)
	}

	logger.Info("Server stopped")
}
