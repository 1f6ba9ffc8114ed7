// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package router defines HTTP routes for the Carb Count app.

# Route Registration

NewRouter creates a configured http.ServeMux with all endpoints:

	mux := router.NewRouter(db, cfg, provider, clock.Eastern())

# Endpoints

Health:

	GET /health

Day log:

	GET  /            - Today's log
	GET  /day/{date}  - Log for a specific date (read only unless today)
	POST /            - Submit an entry for today
	POST /day/{date}  - Submit (redirects unless {date} is today)

History and maintenance:

	GET /history               - All dates with entries
	GET /undo                  - Delete today's newest entry
	GET /clear/{date}          - Delete all entries for a date
	GET /delete/{date}/{index} - Delete one entry by position

Every response from these routes refreshes the 1-year identity cookie.

# Handler Initialization

The router creates handler instances with dependency injection:

	logHandler := handlers.NewLogHandler(db, cfg, provider, clk)
	historyHandler := handlers.NewHistoryHandler(db, cfg, clk)

The nutrition provider and clock come in from main so tests can substitute
fakes.
*/
package router
