package backend

import (
	"net/http"

	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
)

// Failure taxonomy for the request pipeline. Callers branch on these with
// errors.Is; the pipeline itself never navigates and never touches the
// session store.
var (
	// ErrUnauthorized means the session token was missing or rejected.
	// Callers must treat this as "session invalid", clear the session, and
	// decide navigation. Never retried.
	ErrUnauthorized apperrors.Error = apperrors.New("session is missing or invalid").
				SetStatusCode(http.StatusUnauthorized)

	// ErrRequestFailed is any non-success response other than unauthorized.
	// Carries the server-supplied message when one could be parsed. Not
	// retried automatically.
	ErrRequestFailed apperrors.Error = apperrors.New("backend request failed").
				SetStatusCode(http.StatusBadGateway)

	// ErrTransport is a network or connection failure. Safe to retry with
	// backoff; never a credential problem.
	ErrTransport apperrors.Error = apperrors.New("backend unreachable").
			SetStatusCode(http.StatusServiceUnavailable)
)
