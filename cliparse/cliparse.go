package cliparse

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
)

// Nutrition provider names accepted by -provider / NUTRITION_PROVIDER.
const (
	ProviderNinjas        = "ninjas"
	ProviderOpenFoodFacts = "openfoodfacts"
)

type Config struct {
	Port              int
	DatabaseURL       string
	NutritionProvider string
	NutritionAPIKey   string
}

// ParseFlags validates flags and sets port number
func ParseFlags(args []string) (Config, error) {
	var cfg Config

	fs := flag.NewFlagSet("carb-count", flag.ContinueOnError)

	// Network config (can be CLI args or env)
	fs.IntVar(&cfg.Port, "p", 0, "Server port")
	fs.StringVar(&cfg.DatabaseURL, "d", "", "Database URL")

	// Nutrition lookup (prefer env variables, but allow CLI for dev)
	fs.StringVar(&cfg.NutritionProvider, "provider", "", "Nutrition provider (ninjas or openfoodfacts)")
	fs.StringVar(&cfg.NutritionAPIKey, "api-key", "", "Nutrition API key (prefer env)")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	// Fall back to environment variables
	if cfg.Port == 0 {
		if portStr := os.Getenv("PORT"); portStr != "" {
			port, err := strconv.Atoi(portStr)
			if err != nil {
				return Config{}, errors.New("invalid PORT env variable")
			}
			cfg.Port = port
		} else {
			cfg.Port = 3318 // default
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}
	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("database URL required (use -d or DATABASE_URL env)")
	}

	if cfg.NutritionProvider == "" {
		cfg.NutritionProvider = os.Getenv("NUTRITION_PROVIDER")
		if cfg.NutritionProvider == "" {
			cfg.NutritionProvider = ProviderNinjas
		}
	}
	if cfg.NutritionProvider != ProviderNinjas && cfg.NutritionProvider != ProviderOpenFoodFacts {
		return Config{}, fmt.Errorf("unknown nutrition provider %q (use %s or %s)",
			cfg.NutritionProvider, ProviderNinjas, ProviderOpenFoodFacts)
	}

	// API key is optional - without it auto lookup degrades, manual entry still works
	if cfg.NutritionAPIKey == "" {
		cfg.NutritionAPIKey = os.Getenv("NUTRITION_API_KEY")
	}

	return cfg, nil
}
