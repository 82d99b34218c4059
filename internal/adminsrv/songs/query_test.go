package songs

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestParseQueryDefaults(t *testing.T) {
	q := ParseQuery(url.Values{})
	assert.Equal(t, DefaultQuery(), q)
	assert.Equal(t, 1, q.Page)
	assert.Equal(t, 50, q.Limit)
	assert.Nil(t, q.Active, "absent active means no filter")
	assert.Empty(t, q.Sort)
}

func TestParseQueryFields(t *testing.T) {
	values, err := url.ParseQuery("page=3&limit=25&title=Imagine&artist=Lennon&genre[]=3&genre[]=5&eras[]=7&active=true&sort=title&direction=desc")
	require.NoError(t, err)

	q := ParseQuery(values)
	assert.Equal(t, 3, q.Page)
	assert.Equal(t, 25, q.Limit)
	assert.Equal(t, "Imagine", q.Title)
	assert.Equal(t, "Lennon", q.Artist)
	assert.Equal(t, []int{3, 5}, q.Genres)
	assert.Equal(t, []int{7}, q.Eras)
	require.NotNil(t, q.Active)
	assert.True(t, *q.Active)
	assert.Equal(t, "title", q.Sort)
	assert.Equal(t, DirectionDesc, q.Direction)
}

func TestParseQueryPerPageAlias(t *testing.T) {
	q := ParseQuery(url.Values{"per_page": {"10"}})
	assert.Equal(t, 10, q.Limit)

	// limit wins over per_page when both are present
	q = ParseQuery(url.Values{"limit": {"20"}, "per_page": {"10"}})
	assert.Equal(t, 20, q.Limit)
}

func TestParseQueryCombinedSortParam(t *testing.T) {
	q := ParseQuery(url.Values{"sort": {"title-desc"}})
	assert.Equal(t, "title", q.Sort)
	assert.Equal(t, DirectionDesc, q.Direction)

	// a dash that is not a direction suffix stays part of the column
	q = ParseQuery(url.Values{"sort": {"play-count"}})
	assert.Equal(t, "play-count", q.Sort)
	assert.Equal(t, DirectionAsc, q.Direction)
}

func TestParseQueryDirectionFallback(t *testing.T) {
	q := ParseQuery(url.Values{"sort": {"title"}})
	assert.Equal(t, DirectionAsc, q.Direction)

	q = ParseQuery(url.Values{"sort": {"title"}, "direction": {"sideways"}})
	assert.Equal(t, DirectionAsc, q.Direction)
}

func TestParseQueryBadNumbers(t *testing.T) {
	q := ParseQuery(url.Values{
		"page":    {"zero"},
		"limit":   {"-5"},
		"genre[]": {"3", "x", "5"},
	})
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, []int{3, 5}, q.Genres)
}

func TestEncodeOmitsUnsetFields(t *testing.T) {
	qs := DefaultQuery().QueryString()
	assert.Equal(t, "limit=50&page=1", qs)
	assert.NotContains(t, qs, "active")
	assert.NotContains(t, qs, "title")
	assert.NotContains(t, qs, "undefined")
}

func TestEncodeArraysAndBooleans(t *testing.T) {
	q := DefaultQuery()
	q.Genres = []int{3, 5}
	q.Active = boolPtr(false)

	values := q.Encode()
	assert.Equal(t, []string{"3", "5"}, values["genre[]"])
	assert.Equal(t, "false", values.Get("active"))
}

func TestQueryRoundTrip(t *testing.T) {
	cases := []Query{
		DefaultQuery(),
		{Page: 2, Limit: 25, Title: "Imagine"},
		{Page: 1, Limit: 50, Artist: "Lennon", Genres: []int{3, 5}, Eras: []int{1}},
		{Page: 9, Limit: 10, Active: boolPtr(true), Sort: "title", Direction: DirectionDesc},
		{Page: 1, Limit: 50, Active: boolPtr(false), Sort: "year", Direction: DirectionAsc},
	}
	for _, want := range cases {
		got := ParseQuery(want.Encode())
		assert.Equal(t, want, got, "decode(encode(q)) must equal q for %q", want.QueryString())
	}
}

func TestQueryStringIsCanonical(t *testing.T) {
	a := Query{Page: 1, Limit: 50, Title: "x", Sort: "title", Direction: DirectionAsc}
	b := Query{Sort: "title", Direction: DirectionAsc, Title: "x", Limit: 50, Page: 1}
	assert.Equal(t, a.QueryString(), b.QueryString())
}

func TestNormalize(t *testing.T) {
	q := Query{Page: -3, Limit: 0, Sort: "title", Direction: "sideways"}.Normalize()
	assert.Equal(t, DefaultPage, q.Page)
	assert.Equal(t, DefaultLimit, q.Limit)
	assert.Equal(t, DirectionAsc, q.Direction)

	// direction is dropped without a sort column
	q = Query{Page: 1, Limit: 50, Direction: DirectionDesc}.Normalize()
	assert.Empty(t, q.Direction)
}

func TestToggleSort(t *testing.T) {
	q := DefaultQuery()
	q.Sort, q.Direction = "title", DirectionAsc

	q = q.ToggleSort("title")
	assert.Equal(t, "title", q.Sort)
	assert.Equal(t, DirectionDesc, q.Direction)

	q = q.ToggleSort("artist")
	assert.Equal(t, "artist", q.Sort)
	assert.Equal(t, DirectionAsc, q.Direction)

	// toggling from desc flips back to asc
	q = q.ToggleSort("artist")
	q = q.ToggleSort("artist")
	assert.Equal(t, DirectionAsc, q.Direction)
}

func TestToggleSortFromUnsorted(t *testing.T) {
	q := DefaultQuery().ToggleSort("year")
	assert.Equal(t, "year", q.Sort)
	assert.Equal(t, DirectionAsc, q.Direction)
}
