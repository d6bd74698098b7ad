package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-talent-dashboard/config"
	_ "go-talent-dashboard/docs" // Important for Swagger
	"go-talent-dashboard/internal/app"
	v1 "go-talent-dashboard/internal/delivery/http/v1"
	"go-talent-dashboard/pkg/logger"

	"github.com/gin-gonic/gin"
)

// @title           Talent Dashboard API
// @version         1.0
// @description     Job requirements, candidate discovery and export for recruiters.
// @host            localhost:8080
// @BasePath        /v1
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init(cfg.LogLevel)
	logger.Log.Info("Starting talent dashboard", "port", cfg.Port, "store", cfg.StoreDriver)
	gin.SetMode(cfg.GinMode)

	accessLog := logger.NewAccessLogger()
	defer accessLog.Sync()

	// 3. Setup Storage and UseCases
	startCtx, cancelStart := context.WithTimeout(context.Background(), 15*time.Second)
	application, err := app.New(startCtx, cfg, nil)
	cancelStart()
	if err != nil {
		logger.Log.Error("Failed to initialise application", "error", err)
		os.Exit(1)
	}

	// 4. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		JobRequirementUC: application.JobRequirementUC,
		CandidateUC:      application.CandidateUC,
		ExportUC:         application.ExportUC,
		SearchUC:         application.SearchUC,
		DashboardUC:      application.DashboardUC,
		HealthUC:         application.HealthUC,
		AccessLog:        accessLog,
		Redis:            application.Redis,
		Config:           cfg,
	})

	// 5. Start Server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
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
	if err := application.Shutdown(ctx); err != nil {
		logger.Log.Error("Background searches did not stop cleanly", "error", err)
	}

	logger.Log.Info("Server exiting")
}
