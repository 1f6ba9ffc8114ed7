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

const ninjasEndpoint = "https://api.api-ninjas.com/v1/nutrition"

// APINinjas is the keyed commercial provider.
type APINinjas struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

func NewAPINinjas(apiKey string) *APINinjas {
	return &APINinjas{
		apiKey:   apiKey,
		endpoint: ninjasEndpoint,
		client:   newHTTPClient(),
	}
}

func (p *APINinjas) Configured() bool {
	return p.apiKey != ""
}

type ninjasResponse struct {
	Items []struct {
		Name          string  `json:"name"`
		CarbsTotalG   float64 `json:"carbohydrates_total_g"`
		CarbsTotalAlt float64 `json:"carbs_total_g"`
		ServingSizeG  float64 `json:"serving_size_g"`
	} `json:"items"`
}

func (p *APINinjas) Lookup(ctx context.Context, query string) ([]Item, error) {
	if !p.Configured() {
		return nil, ErrNotConfigured
	}

	u := p.endpoint + "?query=" + url.QueryEscape(query)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build nutrition request: %w", err)
	}
	req.Header.Set("X-Api-Key", p.apiKey)

	resp, err := p.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to reach nutrition service: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{Code: resp.StatusCode}
	}

	var nr ninjasResponse
	if err := json.NewDecoder(resp.Body).Decode(&nr); err != nil {
		return nil, fmt.Errorf("failed to parse nutrition response: %w", err)
	}

	if len(nr.Items) == 0 {
		return nil, ErrNoResults
	}

	items := make([]Item, 0, len(nr.Items))
	for _, it := range nr.Items {
		// A blank carb field from this provider counts as zero rather than
		// dropping the item - premium-gated fields come back empty on the
		// free tier
		carbs := it.CarbsTotalG
		if carbs == 0 {
			carbs = it.CarbsTotalAlt
		}

		item := Item{
			Name:  it.Name,
			Carbs: decimal.NewFromFloat(carbs),
		}
		if it.ServingSizeG > 0 {
			item.ServingQty = decimal.NewNullDecimal(decimal.NewFromFloat(it.ServingSizeG))
			item.ServingUnit = "g"
		}
		items = append(items, item)
	}

	return items, nil
}
