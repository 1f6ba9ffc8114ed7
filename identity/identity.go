// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package identity

import (
	"net/http"

	"github.com/google/uuid"
)

// CookieName is the cookie carrying the anonymous user token.
const CookieName = "user_id"

// cookieMaxAge keeps the identity alive for a year from the last visit.
const cookieMaxAge = 365 * 24 * 60 * 60

// Resolve extracts the user token from the request cookie, minting a fresh
// random token when none is present. The token is opaque: it identifies a
// browser, it does not authenticate anyone.
func Resolve(r *http.Request) string {
	c, err := r.Cookie(CookieName)
	if err == nil && c.Value != "" {
		return c.Value
	}
	return uuid.NewString()
}

// SetCookie echoes the token back to the browser. Called on every response so
// the expiry slides forward with each visit.
func SetCookie(w http.ResponseWriter, userID string) {
	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    userID,
		Path:     "/",
		MaxAge:   cookieMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}
