// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"database/sql"
	"time"

	"github.com/shopspring/decimal"
)

// Submission mode constants
const (
	ModeAuto   = "auto"
	ModeManual = "manual"
)

// Domain types

// LogEntry is one immutable record of a food eaten. Only whole-row deletion
// is supported; there is no update path.
type LogEntry struct {
	ID          int64
	UserID      string
	EntryDate   time.Time
	Food        string
	Carbs       decimal.Decimal
	ServingQty  decimal.NullDecimal
	ServingUnit sql.NullString
	CreatedAt   time.Time
}

// View types rendered by the HTML templates. Numeric fields are preformatted
// strings so the templates stay dumb.

type EntryView struct {
	Index   int
	Food    string
	Carbs   string
	Serving string
}

type DayView struct {
	Entries      []EntryView
	TotalCarbs   string
	Average7Day  string
	DateDisplay  string
	DateRaw      string
	ViewingToday bool
	Error        string
	Suggestions  []string
	Degraded     bool
}

type HistoryView struct {
	Dates    []string
	Degraded bool
}
