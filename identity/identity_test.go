// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
)

func TestResolveExistingCookie(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: "existing-token"})

	if got := Resolve(req); got != "existing-token" {
		t.Errorf("expected existing-token, got %q", got)
	}
}

func TestResolveMintsToken(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	got := Resolve(req)
	if got == "" {
		t.Fatal("expected a minted token")
	}
	if _, err := uuid.Parse(got); err != nil {
		t.Errorf("minted token should be a UUID, got %q: %v", got, err)
	}
}

func TestResolveMintsOnEmptyValue(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)
	req.AddCookie(&http.Cookie{Name: CookieName, Value: ""})

	if got := Resolve(req); got == "" {
		t.Error("empty cookie value should mint a new token")
	}
}

func TestResolveMintsUniqueTokens(t *testing.T) {
	req := httptest.NewRequest("GET", "/", nil)

	if Resolve(req) == Resolve(req) {
		t.Error("minted tokens should be unique")
	}
}

func TestSetCookie(t *testing.T) {
	w := httptest.NewRecorder()
	SetCookie(w, "some-token")

	cookies := w.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("expected 1 cookie, got %d", len(cookies))
	}

	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("expected cookie name %q, got %q", CookieName, c.Name)
	}
	if c.Value != "some-token" {
		t.Errorf("expected cookie value some-token, got %q", c.Value)
	}
	if c.MaxAge != 365*24*60*60 {
		t.Errorf("expected 1-year max age, got %d", c.MaxAge)
	}
	if c.Path != "/" {
		t.Errorf("expected path /, got %q", c.Path)
	}
	if !c.HttpOnly {
		t.Error("expected HttpOnly cookie")
	}
}
