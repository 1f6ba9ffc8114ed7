// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package identity provides the anonymous cookie identity for the app.

# Identity Model

There are no accounts. A browser is identified by an opaque random token
stored in the "user_id" cookie, and every storage call is scoped by that
token. Losing the cookie means losing the history; two browsers are two
users. That is the whole model.

# Resolving

Handlers resolve the identity at the top of every request:

	userID := identity.Resolve(r)
	identity.SetCookie(w, userID)

Resolve returns the cookie value if present, otherwise a freshly minted
UUID. It never touches the database.

# Cookie Semantics

SetCookie writes the token back on every response with a 1-year MaxAge, so
the expiry slides forward each visit. The cookie is HttpOnly with SameSite
Lax; there is nothing to steal beyond the user's own food diary, but there
is no reason to expose it to scripts either.
*/
package identity
