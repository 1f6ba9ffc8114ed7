// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package main provides the entry point for the Carb Count web server.

Carb Count is a personal carbohydrate tracker. Foods are logged per day,
either through an external nutrition lookup or by typing a name and gram
count manually, and the app shows daily totals, a rolling 7-day average,
and frequently logged foods as suggestions.

# Starting the Server

The server requires a PostgreSQL connection string:

	DATABASE_URL=postgres://... go run main.go

Or with flags:

	go run main.go -p 3318 -d "postgres://..."

A .env file in the working directory is loaded if present.

# Configuration

Required settings:

  - DATABASE_URL (-d): PostgreSQL connection string

Optional settings:

  - PORT (-p): Server port (default: 3318)
  - NUTRITION_PROVIDER (-provider): "ninjas" or "openfoodfacts" (default: ninjas)
  - NUTRITION_API_KEY (-api-key): Provider credential; without it auto lookup
    is disabled and manual entry keeps working

# Architecture

The server uses a handler-based architecture with dependency injection:

  - handlers: HTTP request handlers (day log, history, maintenance routes)
  - router: Route definitions using Go 1.22+ routing
  - middleware: Request logging
  - models: Domain and view types
  - identity: Anonymous cookie identity
  - store: food_logs storage layer
  - nutrition: External nutrition lookup providers
  - clock: Fixed-timezone time source
  - db: Schema creation
  - cliparse: Configuration parsing

See package documentation for each component.
*/
package main
