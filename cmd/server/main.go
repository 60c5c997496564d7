package main

import (
	"context"
	"math/rand"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/arosal/skillcheck/internal/api"
	"github.com/arosal/skillcheck/internal/config"
	"github.com/arosal/skillcheck/internal/db"
	"github.com/arosal/skillcheck/internal/interview"
	"github.com/arosal/skillcheck/internal/logger"
	"github.com/arosal/skillcheck/internal/repository/sqlite"
	"github.com/arosal/skillcheck/internal/services"
	"github.com/arosal/skillcheck/internal/session"
)

func main() {
	cfg := config.Load()

	// Initialize logger
	log := logger.New(
		logger.WithLevel(logger.ParseLevel(cfg.LogLevel)),
		logger.WithColors(true),
	)
	logger.SetDefault(log)

	log.Info("===========================================")
	log.Info("SkillCheck Server Starting")
	log.Info("===========================================")

	if err := cfg.Validate(); err != nil {
		log.Error("invalid configuration: %v", err)
		os.Exit(1)
	}
	log.Info("configuration loaded")
	log.Debug("addr=%s", cfg.Addr)
	log.Debug("db_path=%s", cfg.DBPath)
	log.Debug("log_level=%s", cfg.LogLevel)
	log.Debug("session_ttl_minutes=%d", cfg.SessionTTLMinutes)
	log.Debug("session_sweep_minutes=%d", cfg.SweepMinutes)

	// Open database
	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Error("failed to open database: %v", err)
		os.Exit(1)
	}
	defer func() {
		log.Debug("closing database connection")
		database.Close()
	}()

	// Initialize session manager and services
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	sessions := session.NewManager(rng, time.Duration(cfg.SessionTTLMinutes)*time.Minute)

	resultRepo := sqlite.NewResultRepository(database.DB)
	assessmentService := services.NewAssessmentService(sessions, resultRepo)

	srv := &api.Server{
		AssessmentService: assessmentService,
		Interviews:        interview.NewManager(),
	}

	ctx, cancel := context.WithCancel(context.Background())
	sessions.StartSweeper(ctx, time.Duration(cfg.SweepMinutes)*time.Minute)

	// Configure HTTP server
	httpServer := &http.Server{
		Addr:         cfg.Addr,
		Handler:      srv.Routes(),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start HTTP server
	go func() {
		log.Info("HTTP server listening on %s", cfg.Addr)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("HTTP server error: %v", err)
			os.Exit(1)
		}
	}()

	// Wait for shutdown signal
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop

	log.Info("received signal %v, initiating graceful shutdown", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	log.Debug("stopping session sweeper")
	cancel()

	log.Debug("shutting down HTTP server")
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error: %v", err)
	}

	sessions.StopSweeper()

	log.Info("===========================================")
	log.Info("SkillCheck Server Stopped")
	log.Info("===========================================")
}
