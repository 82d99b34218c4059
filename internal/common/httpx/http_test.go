package httpx

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
)

func serve(handler RequestHandler) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	WrapHttpRsp(handler)(rec, httptest.NewRequest("GET", "/", nil))
	return rec
}

func TestWrapHttpRspJson(t *testing.T) {
	rec := serve(func(r *http.Request) (*Response, error) {
		return &Response{
			StatusCode: http.StatusCreated,
			Location:   "/things/1",
			Response:   map[string]string{"status": "created"},
		}, nil
	})

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))
	assert.Equal(t, "/things/1", rec.Header().Get("Location"))
	assert.JSONEq(t, `{"status":"created"}`, rec.Body.String())
}

func TestWrapHttpRspHTML(t *testing.T) {
	rec := serve(func(r *http.Request) (*Response, error) {
		return &Response{
			StatusCode:  http.StatusOK,
			ContentType: "text/html",
			Response:    "<p>hello</p>",
		}, nil
	})

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>hello</p>", rec.Body.String())
}

func TestWrapHttpRspNilResponse(t *testing.T) {
	rec := serve(func(r *http.Request) (*Response, error) {
		return nil, nil
	})
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestWrapHttpRspClassifiesAppError(t *testing.T) {
	appErr := apperrors.New("no such thing").SetStatusCode(http.StatusNotFound)
	rec := serve(func(r *http.Request) (*Response, error) {
		return nil, appErr
	})

	require.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"message":"no such thing"}`, rec.Body.String())
}

func TestWrapHttpRspPassesHTTPError(t *testing.T) {
	rec := serve(func(r *http.Request) (*Response, error) {
		return nil, ErrRequestTimeout()
	})

	require.Equal(t, http.StatusRequestTimeout, rec.Code)
	assert.JSONEq(t, `{"message":"request timed out"}`, rec.Body.String())
}

func TestWrapHttpRspGenericError(t *testing.T) {
	rec := serve(func(r *http.Request) (*Response, error) {
		return nil, errors.New("boom")
	})

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"boom"}`, rec.Body.String())
}

func TestSendErrorDefaultsStatusCode(t *testing.T) {
	rec := httptest.NewRecorder()
	SendError(rec, apperrors.New("unclassified"))

	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"message":"unclassified"}`, rec.Body.String())
}

func TestSendHTMLRspRejectsNonText(t *testing.T) {
	rec := httptest.NewRecorder()
	SendHTMLRsp(httptest.NewRequest("GET", "/", nil).Context(), rec, http.StatusOK, 42)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
