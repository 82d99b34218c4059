package songs

import (
	"context"
	"encoding/json"

	"github.com/deokapil/mayhem-admin/internal/adminsrv/backend"
	"github.com/deokapil/mayhem-admin/pkg/api"
)

// songsEndpoint is the backend listing endpoint.
const songsEndpoint = "songs"

// Service drives the songs listing: it normalizes navigation state into the
// canonical query, fetches pages through the request pipeline, and keeps
// superseded results from overwriting newer ones.
type Service struct {
	client *backend.Client
	sync   *Synchronizer
}

// NewService creates a listing service over the given request pipeline.
func NewService(client *backend.Client) *Service {
	s := &Service{client: client}
	s.sync = NewSynchronizer(s.fetchPage)
	return s
}

// List fetches the page of songs described by the query. The query is
// normalized first so the result's pagination always honors page >= 1 and
// limit > 0.
func (s *Service) List(ctx context.Context, q Query) (*Result, error) {
	return s.sync.Fetch(ctx, q.Normalize())
}

// Current returns the most recently accepted listing result, if any.
func (s *Service) Current() *Result {
	return s.sync.Current()
}

// fetchPage issues one listing request and decodes the pagination envelope.
func (s *Service) fetchPage(ctx context.Context, q Query) (*api.SongPage, error) {
	body, err := s.client.Get(ctx, songsEndpoint, q.Encode())
	if err != nil {
		return nil, err
	}
	if body == nil {
		return &api.SongPage{}, nil
	}
	var page api.SongPage
	if err := json.Unmarshal(body, &page); err != nil {
		// a malformed body is a failed request, not a parsing fault to leak
		return nil, backend.ErrRequestFailed.Msg("unable to parse song listing")
	}
	return &page, nil
}
