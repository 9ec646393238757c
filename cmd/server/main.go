package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/generatik/adspace-booking-backend/internal/app"
	"github.com/generatik/adspace-booking-backend/internal/config"
	"github.com/generatik/adspace-booking-backend/internal/db"
	"github.com/generatik/adspace-booking-backend/internal/seed"
)

func main() {
	// For receiving Ctrl+C / SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Load config
	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load config")
	}

	// Connect DB
	pool, err := db.NewPool(ctx, cfg.DBDSN)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect to db")
	}
	defer pool.Close()

	// Init modules
	container := app.NewContainer(app.Config{
		IsProduction: cfg.IsProduction,
		ProdOrigins:  cfg.ProdOrigins,
		DBPool:       pool,
	})

	// Optional demo-data bootstrap
	if cfg.SeedDemoData {
		if err := seed.Run(ctx, container.AdSpaceRepo, container.BookingRepo); err != nil {
			logrus.WithError(err).Fatal("failed to seed demo data")
		}
	}

	// Use http.Server for graceful shutdown
	server := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: container.Router,
	}

	// Run server in separate goroutine
	go func() {
		logrus.WithField("addr", cfg.HTTPAddr).Info("server running")
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.WithError(err).Fatal("server error")
		}
	}()

	// Wait for Ctrl+C
	<-ctx.Done()
	logrus.Info("shutdown signal received")

	// Create a shutdown context with timeout
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Warn("server forced to shutdown")
	}

	logrus.Info("server exited gracefully")
}
