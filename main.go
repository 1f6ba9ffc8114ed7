package main

import (
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"github.com/danielhkuo/carb-count/cliparse"
	"github.com/danielhkuo/carb-count/clock"
	"github.com/danielhkuo/carb-count/db"
	"github.com/danielhkuo/carb-count/nutrition"
	"github.com/danielhkuo/carb-count/router"
)

func main() {
	// Optional .env for local development
	_ = godotenv.Load()

	// Parse configuration
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		slog.Error("Error parsing flags", "error", err)
		os.Exit(1)
	}

	// Connect to PostgreSQL
	dbConn, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		slog.Error("database connection failed", "error", err)
		os.Exit(1)
	}
	defer dbConn.Close()

	// A down database is not fatal here: pages render degraded until it comes back
	if err := dbConn.Ping(); err != nil {
		slog.Error("database unreachable at startup, pages will render degraded", "error", err)
	} else if err := db.CreateSchema(dbConn); err != nil {
		slog.Error("schema creation failed", "error", err)
	} else {
		slog.Info("Database schema ready")
	}

	// Select the nutrition lookup provider
	provider, err := nutrition.NewProvider(cfg)
	if err != nil {
		slog.Error("nutrition provider configuration failed", "error", err)
		os.Exit(1)
	}
	if !provider.Configured() {
		slog.Warn("nutrition provider has no credentials, auto mode disabled", "provider", cfg.NutritionProvider)
	}

	// Create router
	mux := router.NewRouter(dbConn, cfg, provider, clock.Eastern())

	// Create server
	server := http.Server{
		Handler: mux,
		Addr:    ":" + strconv.Itoa(cfg.Port),
	}

	// signal.Notify requires the channel to be buffered
	ctrlc := make(chan os.Signal, 1)
	signal.Notify(ctrlc, os.Interrupt, syscall.SIGTERM)
	go func() {
		// Wait for Ctrl-C signal
		<-ctrlc
		server.Close()
	}()

	// Start server
	slog.Info("Listening", "port", cfg.Port)
	err = server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		slog.Error("Server closed", "error", err)
	} else {
		slog.Info("Server closed", "error", err)
	}
}
