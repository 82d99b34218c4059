package songs

import (
	"context"
	"sync"

	"github.com/deokapil/mayhem-admin/internal/common/apperrors"
	"github.com/deokapil/mayhem-admin/pkg/api"
)

// ErrSuperseded is returned when a fetch result arrives after a newer query
// was issued. The result is discarded; the displayed state always reflects
// the most recently issued query, not the most recently completed one.
var ErrSuperseded = apperrors.New("listing query superseded by a newer navigation")

// FetchFunc fetches one page of songs for a query.
type FetchFunc func(ctx context.Context, q Query) (*api.SongPage, error)

// Result is a fetched page together with the query that produced it and its
// derived pagination.
type Result struct {
	Query      Query
	Page       *api.SongPage
	Pagination Pagination
}

// Synchronizer orders fetches by issue time. Every fetch takes a sequence
// number when issued; a result whose sequence is below the latest issued one
// is discarded on arrival. No cancellation primitive is needed since
// discard-on-arrival gives the same ordering guarantee.
type Synchronizer struct {
	fetch FetchFunc

	mu      sync.Mutex
	issued  uint64 // sequence of the most recently issued fetch
	current *Result
}

// NewSynchronizer creates a synchronizer over the given fetch function.
func NewSynchronizer(fetch FetchFunc) *Synchronizer {
	return &Synchronizer{fetch: fetch}
}

// Fetch issues exactly one fetch for the query and returns its result unless
// a newer query was issued before this one's result arrived, in which case
// ErrSuperseded is returned and the held result is left untouched. Fetch
// errors from a superseded query are also discarded.
func (s *Synchronizer) Fetch(ctx context.Context, q Query) (*Result, error) {
	s.mu.Lock()
	s.issued++
	seq := s.issued
	s.mu.Unlock()

	page, err := s.fetch(ctx, q)

	s.mu.Lock()
	defer s.mu.Unlock()

	if seq < s.issued {
		return nil, ErrSuperseded
	}
	if err != nil {
		return nil, err
	}

	res := &Result{
		Query:      q,
		Page:       page,
		Pagination: NewPagination(q, page.TotalCount),
	}
	s.current = res
	return res, nil
}

// Current returns the most recently accepted result, if any.
func (s *Synchronizer) Current() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.current
}
