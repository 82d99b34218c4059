package songs

// Ellipsis marks a gap in the page link sequence.
const Ellipsis = -1

// Pagination is the derived paging view of a result set. It is recomputed on
// every query, never stored.
type Pagination struct {
	Page       int
	Limit      int
	TotalCount int
	TotalPages int
}

// NewPagination computes paging for a total count under the query's limit.
// TotalPages is ceil(TotalCount/Limit).
func NewPagination(q Query, totalCount int) Pagination {
	q = q.Normalize()
	return Pagination{
		Page:       q.Page,
		Limit:      q.Limit,
		TotalCount: totalCount,
		TotalPages: (totalCount + q.Limit - 1) / q.Limit,
	}
}

// Show reports whether pagination controls should be rendered at all.
// A single page needs no controls.
func (p Pagination) Show() bool {
	return p.TotalPages > 1
}

// HasPrev reports whether a previous page exists.
func (p Pagination) HasPrev() bool {
	return p.Page > 1
}

// HasNext reports whether a next page exists.
func (p Pagination) HasNext() bool {
	return p.Page < p.TotalPages
}

// PrevPage returns the previous page number, never below 1.
func (p Pagination) PrevPage() int {
	if p.Page <= 1 {
		return 1
	}
	return p.Page - 1
}

// NextPage returns the next page number, never above TotalPages.
func (p Pagination) NextPage() int {
	if p.Page >= p.TotalPages {
		return p.TotalPages
	}
	return p.Page + 1
}

// Links returns the page numbers to offer, with Ellipsis marking gaps.
// Seven or fewer pages are listed in full; otherwise the first page, a
// window around the current page, and the last page are offered. Every
// number returned is within [1, TotalPages].
func (p Pagination) Links() []int {
	if p.TotalPages <= 1 {
		return nil
	}
	if p.TotalPages <= 7 {
		links := make([]int, 0, p.TotalPages)
		for i := 1; i <= p.TotalPages; i++ {
			links = append(links, i)
		}
		return links
	}

	links := []int{1}
	if p.Page > 3 {
		links = append(links, Ellipsis)
	}

	start := p.Page - 1
	if start < 2 {
		start = 2
	}
	end := p.Page + 1
	if end > p.TotalPages-1 {
		end = p.TotalPages - 1
	}
	for i := start; i <= end; i++ {
		links = append(links, i)
	}

	if p.Page < p.TotalPages-2 {
		links = append(links, Ellipsis)
	}
	return append(links, p.TotalPages)
}
