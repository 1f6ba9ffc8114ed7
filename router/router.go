// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"database/sql"
	"net/http"

	"github.com/danielhkuo/carb-count/cliparse"
	"github.com/danielhkuo/carb-count/clock"
	"github.com/danielhkuo/carb-count/handlers"
	"github.com/danielhkuo/carb-count/middleware"
	"github.com/danielhkuo/carb-count/nutrition"
)

func NewRouter(db *sql.DB, cfg cliparse.Config, provider nutrition.Provider, clk clock.Clock) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	logHandler := handlers.NewLogHandler(db, cfg, provider, clk)
	historyHandler := handlers.NewHistoryHandler(db, cfg, clk)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Day view and submissions (today only is editable)
	mux.HandleFunc("GET /{$}", middleware.WithLogging(logHandler.ShowDay))
	mux.HandleFunc("POST /{$}", middleware.WithLogging(logHandler.Submit))
	mux.HandleFunc("GET /day/{date}", middleware.WithLogging(logHandler.ShowDay))
	mux.HandleFunc("POST /day/{date}", middleware.WithLogging(logHandler.Submit))

	// History and maintenance
	mux.HandleFunc("GET /history", middleware.WithLogging(historyHandler.History))
	mux.HandleFunc("GET /undo", middleware.WithLogging(historyHandler.Undo))
	mux.HandleFunc("GET /clear/{date}", middleware.WithLogging(historyHandler.ClearDay))
	mux.HandleFunc("GET /delete/{date}/{index}", middleware.WithLogging(historyHandler.DeleteEntry))

	return mux
}
