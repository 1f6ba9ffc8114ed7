// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store is the data-access layer over the food_logs table.

# Contract

Every operation is scoped by the caller's cookie identity token and a civil
date. Entries are immutable once written; the only mutations are inserts and
deletes:

	st := store.New(db)
	err := st.Insert(userID, today, "rice", carbs, qty, "g")
	entries, err := st.FetchForDate(userID, today)
	removed, err := st.DeleteLatestForDate(userID, today)
	err = st.DeleteByIndex(userID, day, 2)
	err = st.ClearDay(userID, day)

Aggregates back the page's summary widgets:

	dates, err := st.ListDates(userID)
	totals, err := st.TotalsForDates(userID, window)
	foods, err := st.TopFoods(userID, 10)

# Ordering

Within a day, created_at is the sole ordering key. FetchForDate returns
ascending (chronological) order; DeleteLatestForDate takes the maximum;
DeleteByIndex counts 0-based positions under ascending order. The position is
recomputed per request, so concurrent inserts or deletes for the same user
and day can shift it. Accepted limitation for a single-user diary.

# Failure Semantics

"No rows" is never an error: an empty day fetches as an empty slice,
DeleteLatestForDate reports false, ClearDay and an out-of-range DeleteByIndex
are no-ops. Real query failures come back wrapped; handlers catch them and
render the page degraded instead of failing the request.

# Precision

Carb grams are NUMERIC in PostgreSQL and decimal.Decimal in Go, end to end.
Totals and the 7-day average are computed without float rounding.
*/
package store
