// Package httpx provides HTTP request/response handling utilities for the
// admin server. It includes support for JSON and HTML responses, error
// handling, and response writer instrumentation.
package httpx

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
)

// Response represents an HTTP response with configurable status code,
// content type, and optional redirect location.
type Response struct {
	StatusCode  int
	Location    string
	Response    any
	ContentType string
}

// RequestHandler defines a function type for handling HTTP requests.
type RequestHandler func(r *http.Request) (*Response, error)

// WrapHttpRsp wraps a RequestHandler to provide standardized response
// handling, including classified error responses and content type
// management. JSON is the default content type; text/html responses carry
// pre-rendered markup.
func WrapHttpRsp(handler RequestHandler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rsp, err := handler(r)
		if err != nil {
			sendClassifiedError(w, err)
			return
		}
		if rsp == nil {
			ErrApplicationError().Send(w)
			return
		}

		if rsp.ContentType == "" {
			rsp.ContentType = "application/json"
		}
		switch rsp.ContentType {
		case "application/json":
			var location []string
			if rsp.Location != "" {
				location = append(location, rsp.Location)
			}
			SendJsonRsp(r.Context(), w, rsp.StatusCode, rsp.Response, location...)
		case "text/html":
			SendHTMLRsp(r.Context(), w, rsp.StatusCode, rsp.Response)
		default:
			ErrApplicationError("unsupported response type").Send(w)
		}
	}
}

// sendClassifiedError maps handler errors onto HTTP error responses.
func sendClassifiedError(w http.ResponseWriter, err error) {
	if httperror, ok := err.(*Error); ok {
		httperror.Send(w)
		return
	}
	if appErr, ok := err.(apperrors.Error); ok {
		SendError(w, appErr)
		return
	}
	ErrApplicationError(err.Error()).Send(w)
}

// SendHTMLRsp writes pre-rendered HTML with the given status code. The
// response value must be a string or []byte.
func SendHTMLRsp(ctx context.Context, w http.ResponseWriter, statusCode int, msg any) {
	var body []byte
	switch v := msg.(type) {
	case string:
		body = []byte(v)
	case []byte:
		body = v
	default:
		log.Ctx(ctx).Error().Msg("html response must be string or bytes")
		ErrApplicationError().Send(w)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	w.Write(body)
}
