// Package auth implements login against the backend and the route guard that
// decides, per navigation, whether a request may reach protected content.
package auth

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
	"github.com/deokapil/mayhem-admin/pkg/api"
)

// loginEndpoint is the backend login endpoint.
const loginEndpoint = "admin/login"

var validate = validator.New(validator.WithRequiredStructEnabled())

// ErrInvalidCredentials is returned when the submitted form fails validation
// before any network call is made.
var ErrInvalidCredentials = apperrors.New("a valid email address and a password are required").
	SetStatusCode(http.StatusBadRequest)

// Credentials is the login form input.
type Credentials struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required"`
}

// Login authenticates the credentials against the backend and returns the
// issued token together with the admin snapshot. The caller owns storing the
// token and navigating; login failures surface as classified errors and are
// reported at the form, never by redirecting.
func Login(ctx context.Context, client *backend.Client, creds Credentials) (*api.AuthResponse, error) {
	if err := validate.Struct(creds); err != nil {
		return nil, ErrInvalidCredentials.Err(err)
	}

	body, err := client.Post(ctx, loginEndpoint, api.LoginRequest{
		Email:    creds.Email,
		Password: creds.Password,
	})
	if err != nil {
		return nil, err
	}

	var rsp api.AuthResponse
	if err := json.Unmarshal(body, &rsp); err != nil {
		return nil, backend.ErrRequestFailed.Msg("unable to parse login response")
	}
	if rsp.Token == "" {
		return nil, backend.ErrRequestFailed.Msg("login response did not include a token")
	}
	return &rsp, nil
}
