// Package session manages the visitor cart token: a random identifier in a
// long-lived cookie that keys the cart snapshot in Valkey. There is no user
// identity behind it; the token is the whole session.
package session

import (
	"crypto/rand"
	"encoding/hex"
	"net/http"
	"time"
)

const (
	// CookieName is the name of the cart token cookie sent to the browser.
	CookieName = "chimkin_cart"

	// cookieMaxAge matches the cart snapshot TTL in Valkey.
	cookieMaxAge = 7 * 24 * time.Hour

	// idLength is the byte length of the random token (32 bytes = 64 hex chars).
	idLength = 32
)

// Token returns the cart token from the request cookie, or ("", false)
// when the visitor has none yet.
func Token(r *http.Request) (string, bool) {
	cookie, err := r.Cookie(CookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}
	return cookie.Value, true
}

// Issue mints a new cart token and sets its cookie on the response.
func Issue(w http.ResponseWriter, secure bool) (string, error) {
	b := make([]byte, idLength)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	token := hex.EncodeToString(b)

	http.SetCookie(w, &http.Cookie{
		Name:     CookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   secure,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   int(cookieMaxAge.Seconds()),
	})

	return token, nil
}
