package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenUsable reports whether a stored token is worth presenting to the
// backend. The token is opaque to this application and is never verified
// here; when it happens to be a JWT with a readable exp claim, an expired
// claim means the backend will reject it anyway, so it is treated as absent.
// Tokens that are not JWTs are always usable.
func TokenUsable(token string) bool {
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		// Not a JWT; the backend decides.
		return true
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return time.Now().Before(exp.Time)
}
