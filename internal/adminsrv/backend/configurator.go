package backend

import "context"

// StaticConfigurator is a Configurator with a fixed base URL and token.
// Used for login (no token yet) and in tests.
type StaticConfigurator struct {
	URL string
	Tok string
}

// BaseURL returns the backend base URL.
func (s StaticConfigurator) BaseURL() string {
	return s.URL
}

// Token returns the fixed token, absent when empty.
func (s StaticConfigurator) Token(_ context.Context) (string, bool) {
	if s.Tok == "" {
		return "", false
	}
	return s.Tok, true
}
