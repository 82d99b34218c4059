// Package server provides the HTTP server for the Mayhem admin console. It
// renders the login and song management pages, gates every route behind the
// session store, and proxies data operations to the remote Mayhem API through
// the authenticated request pipeline.
package server

import (
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/rs/zerolog/log"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/auth"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/config"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/session"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/songs"
	"github.com/deokapil/mayhem-admin/internal/common/httpx"
	"github.com/deokapil/mayhem-admin/internal/common/middleware"
)

// ServerVersion is the admin server release version.
const ServerVersion = "0.1.0"

// ApiVersion is the version of the remote Mayhem API this server talks to.
const ApiVersion = "v1"

// AdminServer is the admin console HTTP server. Manages routing, middleware,
// and the shared request pipeline to the backend.
type AdminServer struct {
	Router *chi.Mux
	Store  session.Store
	Songs  *songs.Service
	client *backend.Client
}

// CreateNewServer creates a new AdminServer instance from the loaded
// configuration. Returns the server instance and any error encountered.
func CreateNewServer() (*AdminServer, error) {
	cfg := config.Config()
	if cfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}

	s := &AdminServer{}
	s.Router = chi.NewRouter()
	s.Store = session.NewCookieStore(
		cfg.Session.CookieName,
		cfg.Session.GetMaxAgeOrDefault(),
		cfg.Session.Secure,
	)
	s.client = backend.NewClient(sessionConfigurator{}, backend.ClientOptions{
		CacheTTL:      cfg.Backend.GetCacheTTLOrDefault(),
		RetryAttempts: cfg.Backend.RetryAttempts,
		Timeout:       cfg.Backend.GetRequestTimeoutOrDefault(),
	})
	s.Songs = songs.NewService(s.client)
	return s, nil
}

// MountHandlers sets up all HTTP routes and middleware for the server.
// The route gate runs after logging and panic recovery so unauthenticated
// redirects are still logged with a request id.
func (s *AdminServer) MountHandlers() {
	s.Router.Use(middleware.RequestLogger)
	s.Router.Use(middleware.PanicHandler)
	s.Router.Use(middleware.SetTimeout(config.Config().GetHandlerTimeoutOrDefault()))
	if config.Config().HandleCORS {
		s.Router.Use(s.HandleCORS)
	}
	s.Router.Use(auth.Middleware(s.Store))
	s.mountResourceHandlers(s.Router)
}

func (s *AdminServer) mountResourceHandlers(r chi.Router) {
	r.Get("/", s.getRoot)
	r.Get(auth.LoginPath, s.getLogin)
	r.Post(auth.LoginPath, s.postLogin)
	r.Post("/logout", s.postLogout)
	r.Get(auth.LandingPath, s.getSongs)
	r.Handle("/static/*", staticHandler())
	r.Get("/version", httpx.WrapHttpRsp(s.getVersion))
	r.Get("/ready", httpx.WrapHttpRsp(s.getReadiness))
}

// GetVersionRsp represents the response for version information.
type GetVersionRsp struct {
	ServerVersion string `json:"serverVersion"`
	ApiVersion    string `json:"apiVersion"`
}

func (s *AdminServer) getVersion(r *http.Request) (*httpx.Response, error) {
	log.Ctx(r.Context()).Debug().Msg("GetVersion")
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response: &GetVersionRsp{
			ServerVersion: "Mayhem Admin Server: " + ServerVersion,
			ApiVersion:    ApiVersion,
		},
	}, nil
}

func (s *AdminServer) getReadiness(r *http.Request) (*httpx.Response, error) {
	log.Ctx(r.Context()).Debug().Msg("Readiness check")

	// The server holds no local state beyond the response cache, so being up
	// is being ready. Backend reachability is reported per request instead.
	return &httpx.Response{
		StatusCode: http.StatusOK,
		Response:   map[string]string{"status": "ready"},
	}, nil
}

// HandleCORS provides CORS middleware for cross-origin requests against the
// configured origin.
func (s *AdminServer) HandleCORS(next http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins:   []string{config.Config().CORSOrigin},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "Content-Length", "Accept-Encoding"},
		ExposedHeaders:   []string{"Location", "X-Mayhem-Request-ID"},
		AllowCredentials: true,
		MaxAge:           300,
	})(next)
}
