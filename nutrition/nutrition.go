// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nutrition

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/danielhkuo/carb-count/cliparse"
)

var (
	// ErrNotConfigured means the provider has no credentials. Returned before
	// any network call is attempted.
	ErrNotConfigured = errors.New("nutrition provider not configured")

	// ErrNoResults means the provider answered but matched nothing. The
	// controller turns this into a "try manual entry" message, not a failure.
	ErrNoResults = errors.New("no foods matched the query")
)

// StatusError reports a non-200 answer from the provider.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("nutrition API error %d", e.Code)
}

// Item is one normalized lookup result. Provider-specific field names are
// mapped into this shape before anything else sees them.
type Item struct {
	Name        string
	Carbs       decimal.Decimal
	ServingQty  decimal.NullDecimal
	ServingUnit string
}

// Provider looks up foods by free text. Exactly one concrete provider is
// active at a time, selected by configuration.
type Provider interface {
	// Lookup returns at least one item on success. Failures are
	// ErrNotConfigured, ErrNoResults, *StatusError, or a wrapped
	// connectivity error.
	Lookup(ctx context.Context, query string) ([]Item, error)

	// Configured reports whether the provider has what it needs to make
	// a request.
	Configured() bool
}

// The outbound call blocks its request, so keep the timeout tight.
const requestTimeout = 8 * time.Second

func newHTTPClient() *http.Client {
	return &http.Client{Timeout: requestTimeout}
}

// NewProvider selects the concrete provider named by the config.
func NewProvider(cfg cliparse.Config) (Provider, error) {
	switch cfg.NutritionProvider {
	case cliparse.ProviderNinjas:
		return NewAPINinjas(cfg.NutritionAPIKey), nil
	case cliparse.ProviderOpenFoodFacts:
		return NewOpenFoodFacts(), nil
	}
	return nil, fmt.Errorf("unknown nutrition provider %q", cfg.NutritionProvider)
}
