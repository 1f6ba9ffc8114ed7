// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"

	"github.com/danielhkuo/carb-count/cliparse"
	"github.com/danielhkuo/carb-count/clock"
	"github.com/danielhkuo/carb-count/identity"
	"github.com/danielhkuo/carb-count/models"
	"github.com/danielhkuo/carb-count/nutrition"
	"github.com/danielhkuo/carb-count/store"
)

type LogHandler struct {
	cfg      cliparse.Config
	store    *store.Store
	provider nutrition.Provider
	clock    clock.Clock
}

func NewLogHandler(db *sql.DB, cfg cliparse.Config, provider nutrition.Provider, clk clock.Clock) *LogHandler {
	return &LogHandler{cfg: cfg, store: store.New(db), provider: provider, clock: clk}
}

// ShowDay handles GET / and GET /day/{date}
// Renders the food log for today or a specific date
func (h *LogHandler) ShowDay(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	todayRaw := clock.Today(h.clock).Format(clock.ISODate)

	dateRaw := r.PathValue("date")
	if dateRaw == "" {
		dateRaw = todayRaw
	}
	if _, err := time.Parse(clock.ISODate, dateRaw); err != nil {
		// Bad link, nothing useful to show
		http.Redirect(w, r, "/", http.StatusFound)
		return
	}

	h.renderDay(w, userID, dateRaw, dateRaw == todayRaw, "")
}

// Submit handles POST / and POST /day/{date}
// Records a manual or lookup-driven entry. Only today is editable: a
// submission targeting any other date redirects without touching storage.
func (h *LogHandler) Submit(w http.ResponseWriter, r *http.Request) {
	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

	today := clock.Today(h.clock)
	todayRaw := today.Format(clock.ISODate)

	if dateRaw := r.PathValue("date"); dateRaw != "" && dateRaw != todayRaw {
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		h.renderDay(w, userID, todayRaw, true, "Invalid form submission.")
		return
	}

	var errMsg string
	if r.FormValue("mode") == models.ModeManual {
		errMsg = h.submitManual(r, userID, today)
	} else {
		errMsg = h.submitAuto(r, userID, today)
	}

	h.renderDay(w, userID, todayRaw, true, errMsg)
}

func (h *LogHandler) submitManual(r *http.Request, userID string, today time.Time) string {
	food := strings.TrimSpace(r.FormValue("manual_food"))
	carbsRaw := strings.TrimSpace(r.FormValue("manual_carbs"))

	carbs, err := decimal.NewFromString(carbsRaw)
	if food == "" || err != nil || carbs.IsNegative() {
		return "Please provide a food name and carb grams."
	}

	var servingQty decimal.NullDecimal
	if qtyRaw := strings.TrimSpace(r.FormValue("manual_serving_qty")); qtyRaw != "" {
		if qty, err := decimal.NewFromString(qtyRaw); err == nil {
			servingQty = decimal.NewNullDecimal(qty)
		}
	}
	servingUnit := strings.TrimSpace(r.FormValue("manual_serving_unit"))

	if err := h.store.Insert(userID, today, food, carbs, servingQty, servingUnit); err != nil {
		slog.Error("failed to insert manual entry", "error", err)
		return "Could not save your entry. Please try again."
	}

	return ""
}

func (h *LogHandler) submitAuto(r *http.Request, userID string, today time.Time) string {
	query := strings.TrimSpace(r.FormValue("food_query"))
	if query == "" {
		return ""
	}

	items, err := h.provider.Lookup(r.Context(), query)
	if err != nil {
		var statusErr *nutrition.StatusError
		switch {
		case errors.Is(err, nutrition.ErrNotConfigured):
			return "Nutrition lookup is not configured. Use manual entry below."
		case errors.Is(err, nutrition.ErrNoResults):
			return "Couldn't find that food. Please try again."
		case errors.As(err, &statusErr):
			return fmt.Sprintf("Nutrition API error %d. Please try again later.", statusErr.Code)
		default:
			slog.Error("nutrition lookup failed", "error", err)
			return "Could not connect to nutrition service."
		}
	}

	// One entry per item: "2 eggs and toast" legitimately logs several foods
	for _, item := range items {
		if err := h.store.Insert(userID, today, item.Name, item.Carbs, item.ServingQty, item.ServingUnit); err != nil {
			slog.Error("failed to insert lookup entry", "error", err, "food", item.Name)
			return "Could not save your entries. Please try again."
		}
	}

	return ""
}

// dayData is the page's storage-backed content. Loading reports degradation
// explicitly instead of failing the request: whatever loaded renders, the
// rest defaults.
type dayData struct {
	entries     []models.LogEntry
	total       decimal.Decimal
	average     decimal.Decimal
	suggestions []string
}

func (h *LogHandler) loadDayData(userID string, date time.Time) (dayData, bool) {
	data := dayData{}
	degraded := false

	entries, err := h.store.FetchForDate(userID, date)
	if err != nil {
		slog.Error("failed to fetch day entries", "error", err)
		degraded = true
	} else {
		data.entries = entries
		for _, e := range entries {
			data.total = data.total.Add(e.Carbs)
		}
	}

	// The rolling window always ends today, even when browsing history
	today := clock.Today(h.clock)
	window := make([]time.Time, 7)
	for i := range window {
		window[i] = today.AddDate(0, 0, -i)
	}

	totals, err := h.store.TotalsForDates(userID, window)
	if err != nil {
		slog.Error("failed to fetch 7-day totals", "error", err)
		degraded = true
	} else {
		sum := decimal.Zero
		for _, d := range window {
			// Absent dates count as zero
			sum = sum.Add(totals[d.Format(clock.ISODate)])
		}
		// Fixed 7-day window: divide by 7 even when history is shorter
		data.average = sum.Div(decimal.NewFromInt(7)).Round(1)
	}

	suggestions, err := h.store.TopFoods(userID, 10)
	if err != nil {
		slog.Error("failed to fetch suggestions", "error", err)
		degraded = true
	} else {
		data.suggestions = suggestions
	}

	return data, degraded
}

func (h *LogHandler) renderDay(w http.ResponseWriter, userID, dateRaw string, viewingToday bool, errMsg string) {
	// dateRaw was validated by the caller
	date, _ := time.Parse(clock.ISODate, dateRaw)

	data, degraded := h.loadDayData(userID, date)

	view := models.DayView{
		TotalCarbs:   formatGrams(data.total),
		Average7Day:  formatGrams(data.average),
		DateDisplay:  date.Format(clock.DisplayDate),
		DateRaw:      dateRaw,
		ViewingToday: viewingToday,
		Error:        errMsg,
		Suggestions:  data.suggestions,
		Degraded:     degraded,
	}
	for i, e := range data.entries {
		ev := models.EntryView{Index: i, Food: e.Food, Carbs: formatGrams(e.Carbs)}
		if e.ServingQty.Valid {
			ev.Serving = strings.TrimSpace(formatGrams(e.ServingQty.Decimal) + " " + e.ServingUnit.String)
		}
		view.Entries = append(view.Entries, ev)
	}

	renderPage(w, "index.html", view)
}

// formatGrams renders a gram amount without trailing zeros, one decimal max
func formatGrams(d decimal.Decimal) string {
	f, _ := d.Float64()
	return humanize.FtoaWithDigits(f, 1)
}
