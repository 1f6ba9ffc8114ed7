// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package nutrition looks up carbohydrate data from an external provider.

# Providers

Two interchangeable providers implement the Provider interface; exactly one
is active, selected by configuration:

  - APINinjas: keyed commercial API. Needs NUTRITION_API_KEY. A blank carb
    field is substituted with zero.
  - OpenFoodFacts: keyless public database. Always configured. Products
    without a usable carb value are dropped.

	provider, err := nutrition.NewProvider(cfg)
	items, err := provider.Lookup(ctx, "2 eggs and toast")

Both normalize into the same Item shape (name, carb grams, optional serving),
so nothing downstream knows which provider answered.

# Failure Taxonomy

Lookup failures are distinguishable so the page can tell the user whether to
retry or switch to manual entry:

  - ErrNotConfigured: missing credentials; returned before any network call
  - ErrNoResults: provider answered, nothing matched
  - *StatusError: provider returned a non-200 status
  - anything else: connectivity failure, wrapped

# Timeout

One outbound request per lookup with an 8 second client timeout. The call
blocks its own HTTP request and nothing else; a timeout surfaces as a
user-visible message for that submission. No retries.
*/
package nutrition
