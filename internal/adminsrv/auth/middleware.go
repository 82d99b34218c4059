package auth

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/session"
)

// LoginPath is the login entry point, the only page reachable without a
// session.
const LoginPath = "/login"

// LandingPath is the default landing page for authenticated clients.
const LandingPath = "/songs"

// RedirectParam carries the originally requested path through the login
// redirect so navigation can resume after authentication.
const RedirectParam = "redirect"

// defaultPublicPaths are always reachable without a session. Anything else
// requires a valid token before any content is served; the check runs at the
// edge on every request and never trusts client-side state.
var defaultPublicPaths = []string{
	LoginPath,
	"/ready",
	"/version",
	"/static/",
}

// Middleware returns the edge route gate. Requests to public paths pass
// through; every other path requires a token in the session store. The
// resolved token is placed in the request context for the request pipeline.
func Middleware(store session.Store, extraPublic ...string) func(http.Handler) http.Handler {
	public := append(append([]string{}, defaultPublicPaths...), extraPublic...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			state, token := NewGuard(store).Resolve(r)
			authed := state == StateAuthenticated

			// An authenticated client has no business on the login page.
			if authed && r.URL.Path == LoginPath {
				http.Redirect(w, r, LandingPath, http.StatusSeeOther)
				return
			}

			if isPublicPath(public, r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			if !authed {
				log.Ctx(r.Context()).Info().Str("path", r.URL.Path).Msg("unauthenticated request, redirecting to login")
				http.Redirect(w, r, LoginRedirectURL(r.URL.Path), http.StatusSeeOther)
				return
			}

			next.ServeHTTP(w, r.WithContext(WithToken(r.Context(), token)))
		})
	}
}

// LoginRedirectURL builds the login URL carrying the originally requested
// path.
func LoginRedirectURL(originalPath string) string {
	v := url.Values{}
	v.Set(RedirectParam, originalPath)
	return LoginPath + "?" + v.Encode()
}

// ResumePath returns the sanitized post-login destination from the request.
// Only local absolute paths are honored; anything else falls back to the
// landing page.
func ResumePath(r *http.Request) string {
	target := r.URL.Query().Get(RedirectParam)
	if target == "" {
		target = r.FormValue(RedirectParam)
	}
	if !strings.HasPrefix(target, "/") || strings.HasPrefix(target, "//") {
		return LandingPath
	}
	return target
}

func isPublicPath(public []string, path string) bool {
	for _, p := range public {
		if strings.HasSuffix(p, "/") {
			if strings.HasPrefix(path, p) {
				return true
			}
			continue
		}
		if path == p {
			return true
		}
	}
	return false
}
