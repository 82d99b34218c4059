package auth

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
	"github.com/deokapil/mayhem-admin/pkg/api"
)

func TestLoginValidation(t *testing.T) {
	// validation failures must never reach the network
	client := backend.NewClient(backend.StaticConfigurator{URL: "http://127.0.0.1:0"})

	cases := []Credentials{
		{},
		{Email: "a@b.com"},
		{Password: "secret"},
		{Email: "not-an-email", Password: "secret"},
	}
	for _, creds := range cases {
		_, err := Login(context.Background(), client, creds)
		require.Error(t, err, "%+v", creds)
		assert.ErrorIs(t, err, ErrInvalidCredentials, "%+v", creds)
	}
}

func TestLoginSuccess(t *testing.T) {
	var gotBody api.LoginRequest
	var gotAuth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/admin/login", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"token": "tok123",
			"admin": {"id": "u1", "email": "a@b.com", "first_name": "Ada", "last_name": "Boss"}
		}`))
	}))
	defer srv.Close()

	client := backend.NewClient(backend.StaticConfigurator{URL: srv.URL})
	rsp, err := Login(context.Background(), client, Credentials{Email: "a@b.com", Password: "secret"})
	require.NoError(t, err)

	assert.Equal(t, "tok123", rsp.Token)
	assert.Equal(t, "Ada", rsp.Admin.FirstName)
	assert.Equal(t, api.LoginRequest{Email: "a@b.com", Password: "secret"}, gotBody)
	assert.Empty(t, gotAuth, "login is a token-less request")
}

func TestLoginRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"message":"invalid email or password"}`))
	}))
	defer srv.Close()

	client := backend.NewClient(backend.StaticConfigurator{URL: srv.URL})
	_, err := Login(context.Background(), client, Credentials{Email: "a@b.com", Password: "wrong"})
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}

func TestLoginMissingToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"admin": {"id": "u1"}}`))
	}))
	defer srv.Close()

	client := backend.NewClient(backend.StaticConfigurator{URL: srv.URL})
	_, err := Login(context.Background(), client, Credentials{Email: "a@b.com", Password: "secret"})
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrRequestFailed)
}
