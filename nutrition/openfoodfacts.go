// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package nutrition

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"github.com/shopspring/decimal"
)

const openFoodFactsEndpoint = "https://world.openfoodfacts.org/cgi/search.pl"

// Carb values from this provider are per 100 g of product.
const offBasisGrams = 100

// OpenFoodFacts is the keyless public-database provider.
type OpenFoodFacts struct {
	endpoint string
	client   *http.Client
}

func NewOpenFoodFacts() *OpenFoodFacts {
	return &OpenFoodFacts{
		endpoint: openFoodFactsEndpoint,
		client:   newHTTPClient(),
	}
}

// Configured is always true: the public database needs no credentials.
func (p *OpenFoodFacts) Configured() bool {
	return true
}

type offResponse struct {
	Products []struct {
		ProductName string `json:"product_name"`
		Nutriments  struct {
			// Pointer distinguishes "absent" from a real zero
			Carbs100G *float64 `json:"carbohydrates_100g"`
		} `json:"nutriments"`
	} `json:"products"`
}

func (p *OpenFoodFacts) Lookup(ctx context.Context, query string) ([]Item, error) {
	params := url.Values{}
	params.Set("search_terms", query)
	params.Set("search_simple", "1")
	params.Set("action", "process")
	params.Set("json", "1")
	params.Set("page_size", "5")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint+"?"+params.Encode(), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build nutrition request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach nutrition service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var or offResponse
	if err := json.NewDecoder(resp.Body).Decode(&or); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition response: %w", err)
	}

	items := []Item{}
	for _, product := range or.Products {
		// Unlike the keyed provider, a product without a usable carb value
		// is dropped - the public database has plenty of half-filled records
		if product.ProductName == "" || product.Nutriments.Carbs100G == nil {
			continue
		}
		items = append(items, Item{
			Name:        product.ProductName,
			Carbs:       decimal.NewFromFloat(*product.Nutriments.Carbs100G),
			ServingQty:  decimal.NewNullDecimal(decimal.NewFromInt(offBasisGrams)),
			ServingUnit: "g",
		})
	}

	if len(items) == 0 {
		return nil, ErrNoResults
	}

	return items, nil
}
