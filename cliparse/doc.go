// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package cliparse handles command-line argument parsing and configuration.

# Configuration

ParseFlags returns a Config struct with all settings:

	cfg, err := cliparse.ParseFlags(os.Args[1:])

# Config Fields

  - Port: Server listen port (default: 3318)
  - DatabaseURL: PostgreSQL connection string (required)
  - NutritionProvider: Lookup provider, "ninjas" or "openfoodfacts" (default: ninjas)
  - NutritionAPIKey: Provider credential (optional)

# CLI Flags

	-p         Server port
	-d         Database URL
	-provider  Nutrition provider
	-api-key   Nutrition API key

# Environment Variables

Flags fall back to environment variables:

	PORT               → -p
	DATABASE_URL       → -d
	NUTRITION_PROVIDER → -provider
	NUTRITION_API_KEY  → -api-key

CLI flags take precedence over environment variables.

# Validation

ParseFlags returns an error if required values are missing or invalid:

  - DATABASE_URL must be provided
  - NUTRITION_PROVIDER must name a known provider

The API key is deliberately NOT required. Without it the auto lookup mode
reports itself unconfigured and manual entry keeps working.

# Example

	// In main.go
	cfg, err := cliparse.ParseFlags(os.Args[1:])
	if err != nil {
		log.Fatal(err)
	}

	db, err := sql.Open("postgres", cfg.DatabaseURL)
	// ...
	mux := router.NewRouter(db, cfg, provider, clock.Eastern())
*/
package cliparse
