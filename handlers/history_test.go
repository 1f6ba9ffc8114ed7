// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"database/sql"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/carb-count/testutil"
)

func newHistoryHandler(t *testing.T) (*HistoryHandler, *sql.DB, func()) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	h := NewHistoryHandler(db, testutil.GetTestConfig(), testutil.NewFixedClock())
	return h, db, func() { db.Close() }
}

func TestHistoryListsDatesDescending(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, "2025-03-01", "rice", 40, at)
	testutil.InsertTestEntry(t, db, testUser, "2025-03-08", "oats", 27, at)
	testutil.InsertTestEntry(t, db, testUser, "2025-03-08", "milk", 12, at.Add(time.Minute))
	testutil.InsertTestEntry(t, db, "someone-else", "2025-03-05", "toast", 13, at)

	req := testutil.MakeFormRequest("GET", "/history", nil, testUser)
	w := httptest.NewRecorder()
	h.History(w, req)

	testutil.AssertStatus(t, w, 200)
	testutil.AssertIdentityCookie(t, w, testUser)

	body := w.Body.String()
	first := strings.Index(body, "2025-03-08")
	second := strings.Index(body, "2025-03-01")
	if first == -1 || second == -1 {
		t.Fatalf("expected both dates listed, body: %s", body)
	}
	if first > second {
		t.Error("expected most recent date first")
	}
	if strings.Count(body, "2025-03-08") > strings.Count(body, "2025-03-01") {
		t.Error("a date with several entries should appear once")
	}
	if strings.Contains(body, "2025-03-05") {
		t.Error("another user's dates must not appear")
	}
}

func TestHistoryEmpty(t *testing.T) {
	h, _, cleanup := newHistoryHandler(t)
	defer cleanup()

	req := testutil.MakeFormRequest("GET", "/history", nil, testUser)
	w := httptest.NewRecorder()
	h.History(w, req)

	testutil.AssertStatus(t, w, 200)
	if !strings.Contains(w.Body.String(), "Nothing logged yet.") {
		t.Error("expected empty-history message")
	}
}

func TestUndoDeletesNewestToday(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testToday, "first", 10, at)
	testutil.InsertTestEntry(t, db, testUser, testToday, "second", 20, at.Add(time.Minute))

	req := testutil.MakeFormRequest("GET", "/undo", nil, testUser)
	w := httptest.NewRecorder()
	h.Undo(w, req)

	testutil.AssertRedirect(t, w, "/")

	entries, err := h.store.FetchForDate(testUser, at)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(entries) != 1 || entries[0].Food != "first" {
		t.Errorf("expected only the older entry to survive, got %+v", entries)
	}
}

func TestUndoEmptyDayRedirects(t *testing.T) {
	h, _, cleanup := newHistoryHandler(t)
	defer cleanup()

	req := testutil.MakeFormRequest("GET", "/undo", nil, testUser)
	w := httptest.NewRecorder()
	h.Undo(w, req)

	// Nothing to undo is not an error
	testutil.AssertRedirect(t, w, "/")
}

func TestClearDay(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testYesterday, "rice", 40, at)
	testutil.InsertTestEntry(t, db, testUser, testYesterday, "milk", 12, at.Add(time.Minute))
	testutil.InsertTestEntry(t, db, testUser, testToday, "oats", 27, at)

	req := testutil.MakeFormRequest("GET", "/clear/"+testYesterday, nil, testUser)
	req.SetPathValue("date", testYesterday)
	w := httptest.NewRecorder()
	h.ClearDay(w, req)

	testutil.AssertRedirect(t, w, "/history")

	if n := testutil.CountEntries(t, db, testUser, testYesterday); n != 0 {
		t.Errorf("expected cleared day to be empty, got %d rows", n)
	}
	if n := testutil.CountEntries(t, db, testUser, testToday); n != 1 {
		t.Errorf("other days must be untouched, got %d rows", n)
	}

	// Clearing again is a no-op
	w = httptest.NewRecorder()
	h.ClearDay(w, req)
	testutil.AssertRedirect(t, w, "/history")
}

func TestClearDayMalformedDate(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testToday, "oats", 27, at)

	req := testutil.MakeFormRequest("GET", "/clear/garbage", nil, testUser)
	req.SetPathValue("date", "garbage")
	w := httptest.NewRecorder()
	h.ClearDay(w, req)

	testutil.AssertRedirect(t, w, "/history")
	if n := testutil.CountEntries(t, db, testUser, testToday); n != 1 {
		t.Errorf("malformed date must not delete anything, got %d rows", n)
	}
}

func TestDeleteEntryByIndex(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testToday, "first", 10, at)
	testutil.InsertTestEntry(t, db, testUser, testToday, "second", 20, at.Add(time.Minute))
	testutil.InsertTestEntry(t, db, testUser, testToday, "third", 30, at.Add(2*time.Minute))

	req := testutil.MakeFormRequest("GET", "/delete/"+testToday+"/1", nil, testUser)
	req.SetPathValue("date", testToday)
	req.SetPathValue("index", "1")
	w := httptest.NewRecorder()
	h.DeleteEntry(w, req)

	testutil.AssertRedirect(t, w, "/day/"+testToday)

	entries, err := h.store.FetchForDate(testUser, at)
	if err != nil {
		t.Fatalf("fetch failed: %v", err)
	}
	if len(entries) != 2 || entries[0].Food != "first" || entries[1].Food != "third" {
		t.Errorf("expected the middle entry gone, got %+v", entries)
	}
}

func TestDeleteEntryOutOfRange(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testToday, "only", 10, at)

	req := testutil.MakeFormRequest("GET", "/delete/"+testToday+"/99", nil, testUser)
	req.SetPathValue("date", testToday)
	req.SetPathValue("index", "99")
	w := httptest.NewRecorder()
	h.DeleteEntry(w, req)

	testutil.AssertRedirect(t, w, "/day/"+testToday)
	if n := testutil.CountEntries(t, db, testUser, testToday); n != 1 {
		t.Errorf("out-of-range index must delete nothing, got %d rows", n)
	}
}

func TestDeleteEntryMalformedIndex(t *testing.T) {
	h, db, cleanup := newHistoryHandler(t)
	defer cleanup()

	at := testutil.NewFixedClock().Instant
	testutil.InsertTestEntry(t, db, testUser, testToday, "only", 10, at)

	req := testutil.MakeFormRequest("GET", "/delete/"+testToday+"/abc", nil, testUser)
	req.SetPathValue("date", testToday)
	req.SetPathValue("index", "abc")
	w := httptest.NewRecorder()
	h.DeleteEntry(w, req)

	testutil.AssertRedirect(t, w, "/day/"+testToday)
	if n := testutil.CountEntries(t, db, testUser, testToday); n != 1 {
		t.Errorf("malformed index must delete nothing, got %d rows", n)
	}
}
