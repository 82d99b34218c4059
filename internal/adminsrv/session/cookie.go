package session

import (
	"net/http"
	"time"
)

// CookieStore persists the session token in an HTTP-only cookie scoped to the
// root path with a strict same-site policy. The cookie is the security
// boundary for the edge route gate, so it is never exposed to scripts.
type CookieStore struct {
	name   string
	maxAge time.Duration
	secure bool
}

// NewCookieStore creates a cookie-backed store. secure should be true in
// production so the cookie is only sent over TLS.
func NewCookieStore(name string, maxAge time.Duration, secure bool) *CookieStore {
	return &CookieStore{
		name:   name,
		maxAge: maxAge,
		secure: secure,
	}
}

// Get returns the token from the request's session cookie, if present and
// still usable. Tokens with a readable, expired exp claim are treated as
// absent so the guard redirects to login instead of bouncing off the backend.
func (s *CookieStore) Get(r *http.Request) (string, bool) {
	c, err := r.Cookie(s.name)
	if err != nil || c.Value == "" {
		return "", false
	}
	if !TokenUsable(c.Value) {
		return "", false
	}
	return c.Value, true
}

// Set writes the session cookie on the response.
func (s *CookieStore) Set(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    token,
		Path:     "/",
		MaxAge:   int(s.maxAge.Seconds()),
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}

// Clear expires the session cookie. Clearing when no cookie exists is a
// no-op on the client.
func (s *CookieStore) Clear(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.name,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: http.SameSiteStrictMode,
	})
}
