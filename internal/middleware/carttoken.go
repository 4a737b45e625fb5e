// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package middleware

import (
	"context"
	"log/slog"
	"net/http"

	"chimkin/internal/session"
)

// ctxKey is a private type for context keys defined in this package.
type ctxKey int

const cartTokenKey ctxKey = iota

// CartToken ensures every request carries a cart token, minting one and
// setting its cookie on first contact. The token is placed in the request
// context for handlers to key cart snapshots with.
func CartToken(secure bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token, ok := session.Token(r)
			if !ok {
				var err error
				token, err = session.Issue(w, secure)
				if err != nil {
					slog.Error("cart token mint failed", "error", err)
					http.Error(w, "Internal Server Error", http.StatusInternalServerError)
					return
				}
			}

			ctx := context.WithValue(r.Context(), cartTokenKey, token)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CartTokenFromCtx returns the cart token stored by CartToken, or "" if
// the middleware did not run.
func CartTokenFromCtx(ctx context.Context) string {
	token, _ := ctx.Value(cartTokenKey).(string)
	return token
}
