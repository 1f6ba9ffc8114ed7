// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/lib/pq"
	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/danielhkuo/carb-count/clock"
	"github.com/danielhkuo/carb-count/models"
)

// Store is the data-access layer over the food_logs table. Every operation
// is scoped by the caller's user token; dates are civil dates bound as
// ISO strings so session timezones never shift an entry to the wrong day.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

// Insert appends one immutable entry dated entryDate. created_at is assigned
// by the database clock. Duplicate foods on the same day are legal - a single
// lookup can produce several items.
func (s *Store) Insert(userID string, entryDate time.Time, food string, carbs decimal.Decimal, servingQty decimal.NullDecimal, servingUnit string) error {
	unit := sql.NullString{String: servingUnit, Valid: servingUnit != ""}

	_, err := s.db.Exec(`
		INSERT INTO food_logs (user_id, entry_date, food, carbs, serving_qty, serving_unit)
		VALUES ($1, $2, $3, $4, $5, $6)
	`, userID, entryDate.Format(clock.ISODate), food, carbs, servingQty, unit)
	if err != nil {
		return fmt.Errorf("failed to insert food log: %w", err)
	}

	return nil
}

// FetchForDate returns the day's entries in chronological order. An empty day
// is an empty slice, not an error.
func (s *Store) FetchForDate(userID string, entryDate time.Time) ([]models.LogEntry, error) {
	rows, err := s.db.Query(`
		SELECT id, food, carbs, serving_qty, serving_unit, created_at
		FROM food_logs
		WHERE user_id = $1 AND entry_date = $2
		ORDER BY created_at ASC
	`, userID, entryDate.Format(clock.ISODate))
	if err != nil {
		return nil, fmt.Errorf("failed to query food logs: %w", err)
	}
	defer rows.Close()

	entries := []models.LogEntry{}
	for rows.Next() {
		entry := models.LogEntry{UserID: userID, EntryDate: entryDate}
		if err := rows.Scan(
			&entry.ID,
			&entry.Food,
			&entry.Carbs,
			&entry.ServingQty,
			&entry.ServingUnit,
			&entry.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("failed to scan food log: %w", err)
		}
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read food logs: %w", err)
	}

	return entries, nil
}

// DeleteLatestForDate removes the single newest entry for the day and reports
// whether a row was removed. An empty day is a no-op, not an error.
func (s *Store) DeleteLatestForDate(userID string, entryDate time.Time) (bool, error) {
	var id int64
	err := s.db.QueryRow(`
		DELETE FROM food_logs
		WHERE id = (
			SELECT id FROM food_logs
			WHERE user_id = $1 AND entry_date = $2
			ORDER BY created_at DESC
			LIMIT 1
		)
		RETURNING id
	`, userID, entryDate.Format(clock.ISODate)).Scan(&id)

	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to delete latest food log: %w", err)
	}

	return true, nil
}

// DeleteByIndex removes the entry at the given 0-based position under
// chronological order. An out-of-range index deletes nothing. The position is
// recomputed per call, so it shifts if the day changes between requests.
func (s *Store) DeleteByIndex(userID string, entryDate time.Time, index int) error {
	if index < 0 {
		return nil
	}

	_, err := s.db.Exec(`
		DELETE FROM food_logs
		WHERE id = (
			SELECT id FROM food_logs
			WHERE user_id = $1 AND entry_date = $2
			ORDER BY created_at ASC
			OFFSET $3 LIMIT 1
		)
	`, userID, entryDate.Format(clock.ISODate), index)
	if err != nil {
		return fmt.Errorf("failed to delete food log by index: %w", err)
	}

	return nil
}

// ClearDay removes every entry for the day. Idempotent.
func (s *Store) ClearDay(userID string, entryDate time.Time) error {
	_, err := s.db.Exec(`
		DELETE FROM food_logs WHERE user_id = $1 AND entry_date = $2
	`, userID, entryDate.Format(clock.ISODate))
	if err != nil {
		return fmt.Errorf("failed to clear day: %w", err)
	}

	return nil
}

// ListDates returns every date with at least one entry, most recent first.
func (s *Store) ListDates(userID string) ([]time.Time, error) {
	rows, err := s.db.Query(`
		SELECT DISTINCT entry_date
		FROM food_logs
		WHERE user_id = $1
		ORDER BY entry_date DESC
	`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list dates: %w", err)
	}
	defer rows.Close()

	dates := []time.Time{}
	for rows.Next() {
		var d time.Time
		if err := rows.Scan(&d); err != nil {
			return nil, fmt.Errorf("failed to scan date: %w", err)
		}
		dates = append(dates, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read dates: %w", err)
	}

	return dates, nil
}

// TotalsForDates returns the summed carbs per date, keyed by ISO date string.
// Dates with no entries are absent from the map - callers default them to
// zero. An empty input yields an empty map without touching the database.
func (s *Store) TotalsForDates(userID string, dates []time.Time) (map[string]decimal.Decimal, error) {
	totals := map[string]decimal.Decimal{}
	if len(dates) == 0 {
		return totals, nil
	}

	isoDates := make([]string, len(dates))
	for i, d := range dates {
		isoDates[i] = d.Format(clock.ISODate)
	}

	rows, err := s.db.Query(`
		SELECT entry_date, COALESCE(SUM(carbs), 0) AS total
		FROM food_logs
		WHERE user_id = $1 AND entry_date = ANY($2::date[])
		GROUP BY entry_date
	`, userID, pq.Array(isoDates))
	if err != nil {
		return nil, fmt.Errorf("failed to query carb totals: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var d time.Time
		var total decimal.Decimal
		if err := rows.Scan(&d, &total); err != nil {
			return nil, fmt.Errorf("failed to scan carb total: %w", err)
		}
		totals[d.Format(clock.ISODate)] = total
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read carb totals: %w", err)
	}

	return totals, nil
}

// TopFoods returns the user's most frequently logged food names, count
// descending with alphabetical tie-break, title-cased for display.
func (s *Store) TopFoods(userID string, limit int) ([]string, error) {
	rows, err := s.db.Query(`
		SELECT food, COUNT(*) AS cnt
		FROM food_logs
		WHERE user_id = $1
		GROUP BY food
		ORDER BY cnt DESC, food ASC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query top foods: %w", err)
	}
	defer rows.Close()

	// cases.Caser is stateful, so build one per call rather than sharing
	titler := cases.Title(language.English)

	foods := []string{}
	for rows.Next() {
		var food string
		var cnt int
		if err := rows.Scan(&food, &cnt); err != nil {
			return nil, fmt.Errorf("failed to scan top food: %w", err)
		}
		foods = append(foods, titler.String(food))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read top foods: %w", err)
	}

	return foods, nil
}
