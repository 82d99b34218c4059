package songs

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
)

func TestServiceList(t *testing.T) {
	var gotQuery string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.RawQuery
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"items": [
				{"id": 1, "title": "Imagine", "artist": "John Lennon", "length_in_seconds": "183", "play_count": 12, "active": true},
				{"id": 2, "title": "Jealous Guy", "artist": "John Lennon", "length_in_seconds": "255", "play_count": 4, "active": true}
			],
			"total_count": 120
		}`))
	}))
	defer srv.Close()

	client := backend.NewClient(backend.StaticConfigurator{URL: srv.URL, Tok: "tok123"})
	svc := NewService(client)

	q := DefaultQuery()
	q.Sort, q.Direction = "title", DirectionAsc

	res, err := svc.List(context.Background(), q)
	require.NoError(t, err)
	require.Len(t, res.Page.Items, 2)
	assert.Equal(t, "Imagine", res.Page.Items[0].Title)
	assert.Equal(t, 120, res.Page.TotalCount)
	assert.Equal(t, 3, res.Pagination.TotalPages)
	assert.Equal(t, "direction=asc&limit=50&page=1&sort=title", gotQuery)
	assert.Same(t, res, svc.Current())
}

func TestServiceListNormalizesQuery(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items":[],"total_count":0}`))
	}))
	defer srv.Close()

	svc := NewService(backend.NewClient(backend.StaticConfigurator{URL: srv.URL, Tok: "t"}))
	res, err := svc.List(context.Background(), Query{Page: -2, Limit: 0})
	require.NoError(t, err)
	assert.Equal(t, DefaultPage, res.Query.Page)
	assert.Equal(t, DefaultLimit, res.Query.Limit)
}

func TestServiceListMalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"items": "not-a-list"`))
	}))
	defer srv.Close()

	svc := NewService(backend.NewClient(backend.StaticConfigurator{URL: srv.URL, Tok: "t"}))
	_, err := svc.List(context.Background(), DefaultQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrRequestFailed)
}

func TestServiceListPropagatesUnauthorized(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer srv.Close()

	svc := NewService(backend.NewClient(backend.StaticConfigurator{URL: srv.URL, Tok: "stale"}))
	_, err := svc.List(context.Background(), DefaultQuery())
	require.Error(t, err)
	assert.ErrorIs(t, err, backend.ErrUnauthorized)
}
