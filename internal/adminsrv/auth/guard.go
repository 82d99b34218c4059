package auth

import (
	"net/http"
	"sync"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/session"
)

// State is the route guard's view of the session.
type State int

const (
	// StateLoading means the session store has not been consulted yet for
	// this client context. Render a neutral pending indicator; never
	// navigate from this state.
	StateLoading State = iota
	// StateAuthenticated means the session lookup yielded a token.
	StateAuthenticated
	// StateUnauthenticated means no usable token exists.
	StateUnauthenticated
)

// String implements fmt.Stringer.
func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Guard tracks the session state for one client context. It starts in
// StateLoading and resolves on the first session lookup; an explicit logout
// or an unauthorized failure drops it back to StateUnauthenticated.
type Guard struct {
	store session.Store

	mu    sync.Mutex
	state State
}

// NewGuard creates a guard over the given session store.
func NewGuard(store session.Store) *Guard {
	return &Guard{store: store, state: StateLoading}
}

// State returns the current state.
func (g *Guard) State() State {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.state
}

// Resolve consults the session store for the request and transitions out of
// StateLoading. Returns the resulting state and the token when present.
func (g *Guard) Resolve(r *http.Request) (State, string) {
	token, ok := g.store.Get(r)

	g.mu.Lock()
	defer g.mu.Unlock()
	if ok {
		g.state = StateAuthenticated
		return g.state, token
	}
	g.state = StateUnauthenticated
	return g.state, ""
}

// Invalidate transitions to StateUnauthenticated. Called on explicit logout
// and whenever a request fails with an unauthorized classification.
func (g *Guard) Invalidate() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.state = StateUnauthenticated
}
