package client

import (
	"net/url"
	"strconv"
)

// PageQuery carries the backend pagination parameters. Zero-value fields are
// omitted from the request so the backend applies its own defaults; callers
// that want the category-screen defaults should pass DefaultPageQuery.
type PageQuery struct {
	Page    int
	Size    int
	SortBy  string
	SortDir string
}

// DefaultPageQuery is what the category screen wires in when the caller gives
// no explicit pagination: first page, size 50, id ascending.
func DefaultPageQuery(size int) PageQuery {
	if size <= 0 {
		size = 50
	}
	return PageQuery{Page: 0, Size: size, SortBy: "id", SortDir: "asc"}
}

func (p PageQuery) encode(q url.Values) url.Values {
	if q == nil {
		q = url.Values{}
	}
	if p.Page > 0 || p.Size > 0 {
		q.Set("page", strconv.Itoa(p.Page))
	}
	if p.Size > 0 {
		q.Set("size", strconv.Itoa(p.Size))
	}
	if p.SortBy != "" {
		q.Set("sortBy", p.SortBy)
	}
	if p.SortDir != "" {
		q.Set("sortDir", p.SortDir)
	}
	return q
}
