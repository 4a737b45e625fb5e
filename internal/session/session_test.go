package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIssueAndToken(t *testing.T) {
	rr := httptest.NewRecorder()

	token, err := Issue(rr, false)
	if err != nil {
		t.Fatalf("Issue: %v", err)
	}
	if len(token) != idLength*2 {
		t.Errorf("token length: got %d, want %d", len(token), idLength*2)
	}

	// The cookie round-trips back through Token.
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	for _, c := range rr.Result().Cookies() {
		req.AddCookie(c)
	}

	got, ok := Token(req)
	if !ok {
		t.Fatal("expected token from cookie")
	}
	if got != token {
		t.Errorf("token: got %q, want %q", got, token)
	}
}

func TestIssueCookieAttributes(t *testing.T) {
	rr := httptest.NewRecorder()
	if _, err := Issue(rr, true); err != nil {
		t.Fatalf("Issue: %v", err)
	}

	cookies := rr.Result().Cookies()
	if len(cookies) != 1 {
		t.Fatalf("cookies: got %d, want 1", len(cookies))
	}
	c := cookies[0]
	if c.Name != CookieName {
		t.Errorf("name: got %q, want %q", c.Name, CookieName)
	}
	if !c.HttpOnly {
		t.Error("cookie must be HttpOnly")
	}
	if !c.Secure {
		t.Error("cookie must be Secure when requested")
	}
	if c.MaxAge <= 0 {
		t.Errorf("max age: got %d, want > 0", c.MaxAge)
	}
}

func TestTokenMissing(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if _, ok := Token(req); ok {
		t.Error("expected no token without cookie")
	}
}

func TestTokensAreUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		token, err := Issue(httptest.NewRecorder(), false)
		if err != nil {
			t.Fatalf("Issue: %v", err)
		}
		if seen[token] {
			t.Fatalf("duplicate token generated: %s", token)
		}
		seen[token] = true
	}
}
