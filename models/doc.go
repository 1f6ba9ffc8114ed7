// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain and view types for the app.

# Domain Types

  - LogEntry: one immutable food record (user, date, food, carbs, serving,
    created_at). The carbs column is NUMERIC in PostgreSQL and carried as
    decimal.Decimal in Go so daily totals never pick up float drift.

# View Types

Types handed to the HTML templates:

  - DayView: entries, day total, 7-day average, date labels, submit errors,
    suggestions, degraded flag
  - EntryView: one rendered row with its within-day position
  - HistoryView: all dates with entries

Carb amounts in view types are preformatted strings; formatting decisions
live in the handlers, not the templates.

# Constants

Submission modes:

	ModeAuto   = "auto"
	ModeManual = "manual"
*/
package models
