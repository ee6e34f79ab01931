package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"replenishhq/internal/alerts"
	"replenishhq/internal/auth"
	"replenishhq/internal/config"
	"replenishhq/internal/data"
	"replenishhq/internal/events"
	"replenishhq/internal/handlers"
	"replenishhq/internal/routes"
	"replenishhq/internal/storage"
	"replenishhq/internal/utils"

	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: No .env file found")
	}

	cfg := config.Load()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	// Storage and the shared data manager
	store := storage.Open(cfg.DataDir, logger)
	bus := events.NewBus()
	mgr := data.New(store, bus, logger)
	authSvc := auth.NewService(store, cfg.JWTSecret, logger)

	// Background low-stock scanner
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	scanner := alerts.NewScanner(mgr, logger)
	go scanner.Run(ctx, cfg.ScanInterval)

	h := handlers.New(mgr, authSvc, logger)
	router := routes.SetupRouter(h, cfg.CORSOrigins)

	srv := &http.Server{Addr: ":" + cfg.HTTPPort, Handler: router}

	go func() {
		logger.Info("server starting", "port", cfg.HTTPPort, "device", utils.DeviceID())
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start:", err)
		}
	}()

	// Wait for SIGINT/SIGTERM, then drain in-flight requests
	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown failed", "error", err)
	}
}
