// Package songs implements the songs listing: the bidirectional mapping
// between URL query parameters and filter/sort/pagination state, page math,
// and the synchronizer that keeps displayed results consistent with the most
// recently issued query.
package songs

import (
	"net/url"
	"strconv"
	"strings"
)

// Direction is a sort direction.
type Direction string

const (
	DirectionAsc  Direction = "asc"
	DirectionDesc Direction = "desc"
)

// Defaults applied when a field is absent from the query string.
const (
	DefaultPage  = 1
	DefaultLimit = 50
)

// Query is the canonical filter/sort/pagination state of the songs listing.
// It is always reconstructible from, and serializable to, the URL query
// string, so the listing is resumable from a bookmarked or shared link.
// Page numbering is one-based throughout.
type Query struct {
	Title     string
	Artist    string
	Genres    []int
	Eras      []int
	Active    *bool
	Page      int
	Limit     int
	Sort      string
	Direction Direction
}

// DefaultQuery returns the state for a listing with no filters applied.
func DefaultQuery() Query {
	return Query{Page: DefaultPage, Limit: DefaultLimit}
}

// ParseQuery decodes a URL query string into a Query, applying schema
// defaults for absent fields. Unparseable numbers fall back to defaults;
// an absent active parameter means "no filter".
func ParseQuery(values url.Values) Query {
	q := DefaultQuery()

	if page, err := strconv.Atoi(values.Get("page")); err == nil && page >= 1 {
		q.Page = page
	}
	if limit := intParam(values, "limit", "per_page"); limit > 0 {
		q.Limit = limit
	}

	q.Title = values.Get("title")
	q.Artist = values.Get("artist")
	q.Genres = intList(values["genre[]"])
	q.Eras = intList(values["eras[]"])

	if v := values.Get("active"); v != "" {
		if active, err := strconv.ParseBool(v); err == nil {
			q.Active = &active
		}
	}

	q.Sort, q.Direction = parseSort(values)
	return q
}

// parseSort reads the sort column and direction. The column may arrive as a
// combined "field-direction" value or as separate sort/direction parameters.
// Direction defaults to asc whenever a sort column is set.
func parseSort(values url.Values) (string, Direction) {
	sort := values.Get("sort")
	if sort == "" {
		return "", ""
	}

	dir := Direction(values.Get("direction"))
	if i := strings.LastIndex(sort, "-"); i > 0 {
		if suffix := Direction(sort[i+1:]); suffix == DirectionAsc || suffix == DirectionDesc {
			sort, dir = sort[:i], suffix
		}
	}
	if dir != DirectionAsc && dir != DirectionDesc {
		dir = DirectionAsc
	}
	return sort, dir
}

func intParam(values url.Values, keys ...string) int {
	for _, key := range keys {
		if n, err := strconv.Atoi(values.Get(key)); err == nil {
			return n
		}
	}
	return 0
}

func intList(raw []string) []int {
	var out []int
	for _, s := range raw {
		if n, err := strconv.Atoi(s); err == nil {
			out = append(out, n)
		}
	}
	return out
}

// Encode produces the canonical URL query values for the state. Array-valued
// filters encode as repeated keys with a [] suffix, booleans as "true" or
// "false", and unset fields are omitted entirely.
func (q Query) Encode() url.Values {
	values := url.Values{}
	values.Set("page", strconv.Itoa(q.Page))
	values.Set("limit", strconv.Itoa(q.Limit))

	if q.Title != "" {
		values.Set("title", q.Title)
	}
	if q.Artist != "" {
		values.Set("artist", q.Artist)
	}
	for _, id := range q.Genres {
		values.Add("genre[]", strconv.Itoa(id))
	}
	for _, id := range q.Eras {
		values.Add("eras[]", strconv.Itoa(id))
	}
	if q.Active != nil {
		values.Set("active", strconv.FormatBool(*q.Active))
	}
	if q.Sort != "" {
		values.Set("sort", q.Sort)
		values.Set("direction", string(q.Direction))
	}
	return values
}

// QueryString returns the canonical query string for the state. Keys are
// sorted, so equal states always produce equal strings.
func (q Query) QueryString() string {
	return q.Encode().Encode()
}

// Normalize clamps the state back onto its invariants: page >= 1, limit > 0,
// and a valid direction whenever a sort column is set.
func (q Query) Normalize() Query {
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.Limit < 1 {
		q.Limit = DefaultLimit
	}
	if q.Sort == "" {
		q.Direction = ""
	} else if q.Direction != DirectionAsc && q.Direction != DirectionDesc {
		q.Direction = DirectionAsc
	}
	return q
}

// ToggleSort returns the state after selecting a sort column. Selecting the
// column that is already active flips the direction; selecting a different
// column resets the direction to asc.
func (q Query) ToggleSort(column string) Query {
	if q.Sort == column && q.Direction == DirectionAsc {
		q.Direction = DirectionDesc
		return q
	}
	q.Sort = column
	q.Direction = DirectionAsc
	return q
}

// WithPage returns the state moved to the given page. Callers must only pass
// pages offered by the pagination control.
func (q Query) WithPage(page int) Query {
	q.Page = page
	return q
}
