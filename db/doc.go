// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package db handles database schema creation.

# Schema Creation

CreateSchema initializes all required tables:

	if err := db.CreateSchema(conn); err != nil {
		slog.Error("schema creation failed", "error", err)
	}

Safe to call multiple times - uses IF NOT EXISTS for all tables and indexes.

# Tables

A single table holds everything:

  - food_logs: one row per food eaten, owned by a cookie identity and dated

Rows are immutable once written. There is no UPDATE path anywhere in the app;
corrections happen by deleting rows (latest, by position, or a whole day).

# Indexes

Performance indexes match the two access patterns:

  - food_logs(user_id, entry_date): day views, day totals, per-day deletes
  - food_logs(user_id, created_at DESC): latest-entry lookup for undo
*/
package db
