// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Carb Count app.

# Handler Types

Each handler is a struct with its dependencies injected via constructor:

  - LogHandler: day view and entry submission (needs the nutrition provider
    and the clock)
  - HistoryHandler: history listing and the maintenance routes

	logHandler := handlers.NewLogHandler(db, cfg, provider, clk)
	historyHandler := handlers.NewHistoryHandler(db, cfg, clk)

# Request Shape

Every handler starts the same way: resolve the cookie identity, echo the
cookie back, then do its one job. Identity is a plain parameter threaded
through the storage calls; nothing reads ambient request state below the
handler.

	GET  /             - ShowDay (today)
	GET  /day/{date}   - ShowDay (specific date, read only unless today)
	POST /             - Submit (manual or auto mode, today only)
	POST /day/{date}   - Submit (redirects unless {date} is today)
	GET  /history      - History
	GET  /undo         - Undo (today's newest entry)
	GET  /clear/{date} - ClearDay
	GET  /delete/{date}/{index} - DeleteEntry

# Submission Modes

The form's "mode" field picks the path:

  - manual: name + carb grams typed in; validated, one row inserted
  - auto (default): free text sent to the nutrition provider, one row
    inserted per returned item

Lookup failures (unconfigured, no results, provider status, connectivity)
each get their own user-visible message so the user knows whether to retry
or fall back to manual entry. None of them fail the request.

# Degraded Rendering

Storage errors never 500 the page. loadDayData reports what it could load
plus a degraded flag; the template renders defaults for the rest. The
maintenance routes log storage errors and redirect regardless.

# Templates

The two pages are embedded html/template files under templates/. View models
carry preformatted strings; templates contain no logic beyond ranges and
conditionals.
*/
package handlers
