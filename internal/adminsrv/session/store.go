// Package session holds the authentication token for the current client
// context. The token is an opaque credential issued by the backend at login;
// this package only stores and retrieves it.
package session

import (
	"net/http"
	"sync"
)

// Store is the session token store. Implementations must make Clear
// idempotent: clearing an absent session is a no-op, not an error. Semantics
// are last-write-wins; there is a single logical writer per client context.
type Store interface {
	// Get returns the token for the request's client context, if any.
	Get(r *http.Request) (string, bool)
	// Set stores the token on the response for the client context.
	Set(w http.ResponseWriter, token string)
	// Clear removes the token. Idempotent.
	Clear(w http.ResponseWriter)
}

// MemStore is an in-memory Store for tests. The request and response
// arguments are ignored; there is one token per store.
type MemStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemStore creates an empty in-memory store.
func NewMemStore() *MemStore {
	return &MemStore{}
}

// Get returns the stored token, if any.
func (s *MemStore) Get(_ *http.Request) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if !s.set || s.token == "" {
		return "", false
	}
	return s.token, true
}

// Set stores the token.
func (s *MemStore) Set(_ http.ResponseWriter, token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
}

// Clear removes the token. Clearing an empty store is a no-op.
func (s *MemStore) Clear(_ http.ResponseWriter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
}
