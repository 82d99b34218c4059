package session

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requestWithCookies(t *testing.T, rec *httptest.ResponseRecorder) *http.Request {
	t.Helper()
	r := httptest.NewRequest("GET", "/songs", nil)
	for _, c := range rec.Result().Cookies() {
		r.AddCookie(c)
	}
	return r
}

func TestCookieStoreRoundTrip(t *testing.T) {
	store := NewCookieStore("auth_token", 7*24*time.Hour, false)

	rec := httptest.NewRecorder()
	store.Set(rec, "tok123")

	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	c := cookies[0]
	assert.Equal(t, "auth_token", c.Name)
	assert.Equal(t, "tok123", c.Value)
	assert.Equal(t, "/", c.Path)
	assert.True(t, c.HttpOnly)
	assert.Equal(t, http.SameSiteStrictMode, c.SameSite)
	assert.Equal(t, int((7 * 24 * time.Hour).Seconds()), c.MaxAge)

	tok, ok := store.Get(requestWithCookies(t, rec))
	require.True(t, ok)
	assert.Equal(t, "tok123", tok)
}

func TestCookieStoreSecure(t *testing.T) {
	store := NewCookieStore("auth_token", time.Hour, true)
	rec := httptest.NewRecorder()
	store.Set(rec, "tok123")
	require.Len(t, rec.Result().Cookies(), 1)
	assert.True(t, rec.Result().Cookies()[0].Secure)
}

func TestCookieStoreClear(t *testing.T) {
	store := NewCookieStore("auth_token", time.Hour, false)

	rec := httptest.NewRecorder()
	store.Clear(rec)
	cookies := rec.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, -1, cookies[0].MaxAge)
	assert.Empty(t, cookies[0].Value)

	// clearing twice is a no-op, not an error
	store.Clear(rec)

	// a request without the cookie yields no token
	_, ok := store.Get(httptest.NewRequest("GET", "/songs", nil))
	assert.False(t, ok)
}

func TestMemStore(t *testing.T) {
	store := NewMemStore()

	_, ok := store.Get(nil)
	assert.False(t, ok)

	store.Set(nil, "tok123")
	tok, ok := store.Get(nil)
	require.True(t, ok)
	assert.Equal(t, "tok123", tok)

	// last write wins
	store.Set(nil, "tok456")
	tok, _ = store.Get(nil)
	assert.Equal(t, "tok456", tok)

	store.Clear(nil)
	_, ok = store.Get(nil)
	assert.False(t, ok)
	store.Clear(nil) // idempotent
}

func signedJWT(t *testing.T, exp time.Time) string {
	t.Helper()
	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "admin",
		"exp": exp.Unix(),
	})
	s, err := tok.SignedString([]byte("test-secret"))
	require.NoError(t, err)
	return s
}

func TestTokenUsable(t *testing.T) {
	// opaque token: backend decides
	assert.True(t, TokenUsable("tok123"))

	// valid JWT with future expiry
	assert.True(t, TokenUsable(signedJWT(t, time.Now().Add(time.Hour))))

	// expired JWT is treated as absent
	assert.False(t, TokenUsable(signedJWT(t, time.Now().Add(-time.Hour))))
}

func TestCookieStoreRejectsExpiredJWT(t *testing.T) {
	store := NewCookieStore("auth_token", time.Hour, false)
	rec := httptest.NewRecorder()
	store.Set(rec, signedJWT(t, time.Now().Add(-time.Minute)))

	_, ok := store.Get(requestWithCookies(t, rec))
	assert.False(t, ok)
}
