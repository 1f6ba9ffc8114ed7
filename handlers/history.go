// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/carb-count/cliparse"
	"github.com/danielhkuo/carb-count/clock"
	"github.com/danielhkuo/carb-count/identity"
	"github.com/danielhkuo/carb-count/models"
	"github.com/danielhkuo/carb-count/store"
)

type HistoryHandler struct {
	cfg   cliparse.Config
	store *store.Store
	clock clock.Clock
}

func NewHistoryHandler(db *sql.DB, cfg cliparse.Config, clk clock.Clock) *HistoryHandler {
	return &HistoryHandler{cfg: cfg, store: store.New(db), clock: clk}
}

// History handles GET /history
// Lists every date with at least one entry, most recent first
func (h *HistoryHandler) History(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	view := models.HistoryView{Dates: []string{}}

	dates, err := h.store.ListDates(userID)
	if err != nil {
		slog.Error("failed to list dates", "error", err)
		view.Degraded = true
	} else {
		for _, d := range dates {
			view.Dates = append(view.Dates, d.Format(clock.ISODate))
		}
	}

	renderPage(w, "history.html", view)
}

// Undo handles GET /undo
// Removes today's most recent entry, then returns to the main page
func (h *HistoryHandler) Undo(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	if _, err := h.store.DeleteLatestForDate(userID, clock.Today(h.clock)); err != nil {
		slog.Error("failed to undo latest entry", "error", err)
	}

	http.Redirect(w, r, "/", http.StatusFound)
}

// ClearDay handles GET /clear/{date}
// Deletes all entries for the date. A malformed date redirects without
// feedback - tolerance for stale or mangled links.
func (h *HistoryHandler) ClearDay(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	if date, err := time.Parse(clock.ISODate, r.PathValue("date")); err == nil {
		if err := h.store.ClearDay(userID, date); err != nil {
			slog.Error("failed to clear day", "error", err)
		}
	}

	http.Redirect(w, r, "/history", http.StatusFound)
}

// DeleteEntry handles GET /delete/{date}/{index}
// Deletes the entry at the 0-based chronological position for the date.
// Malformed dates or indexes redirect without feedback.
func (h *HistoryHandler) DeleteEntry(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	dateRaw := r.PathValue("date")
	date, dateErr := time.Parse(clock.ISODate, dateRaw)
	index, indexErr := strconv.Atoi(r.PathValue("index"))

	if dateErr == nil && indexErr == nil {
		if err := h.store.DeleteByIndex(userID, date, index); err != nil {
			slog.Error("failed to delete entry by index", "error", err)
		}
	}

	http.Redirect(w, r, "/day/"+dateRaw, http.StatusFound)
}
