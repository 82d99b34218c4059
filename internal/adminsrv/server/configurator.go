package server

import (
	"context"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/auth"
	"github.com/deokapil/mayhem-admin/internal/adminsrv/config"
)

// sessionConfigurator points the request pipeline at the configured backend
// and sources the bearer credential from the request context, where the route
// gate placed the session token. Requests on public paths carry no token and
// go out unauthenticated.
type sessionConfigurator struct{}

func (sessionConfigurator) BaseURL() string {
	return config.Config().Backend.APIURL
}

func (sessionConfigurator) Token(ctx context.Context) (string, bool) {
	return auth.TokenFromContext(ctx)
}
