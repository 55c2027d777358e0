package pagination

import (
	"math"
	"net/http"
	"strconv"
)

// MaxPerPage caps the page size a client may request.
const MaxPerPage = 100

// Params holds pagination parameters extracted from query strings.
type Params struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Offset  int `json:"-"`
}

// DefaultParams returns page 1 with 20 entries.
func DefaultParams() Params {
	return Params{Page: 1, PerPage: 20}
}

// NewParams normalizes page and perPage and computes the offset. Values below
// one fall back to the defaults. Pages whose offset would overflow an int are
// clamped to the last representable page.
func NewParams(page, perPage int) Params {
	p := DefaultParams()
	if perPage > 0 {
		p.PerPage = perPage
	}
	if page > 0 {
		p.Page = page
	}
	if maxPage := math.MaxInt / p.PerPage; p.Page-1 > maxPage {
		p.Page = maxPage + 1
	}
	p.Offset = (p.Page - 1) * p.PerPage
	return p
}

// FromRequest reads page and per_page from the query string. Invalid or out
// of range values fall back to the defaults.
func FromRequest(r *http.Request) Params {
	q := r.URL.Query()

	page, err := strconv.Atoi(q.Get("page"))
	if err != nil {
		page = 0
	}
	perPage, err := strconv.Atoi(q.Get("per_page"))
	if err != nil || perPage > MaxPerPage {
		perPage = 0
	}
	return NewParams(page, perPage)
}

// Slice returns the window of items selected by p.
func Slice[T any](items []T, p Params) []T {
	if p.Offset < 0 || p.Offset >= len(items) {
		return []T{}
	}
	end := p.Offset + p.PerPage
	if end > len(items) {
		end = len(items)
	}
	return items[p.Offset:end]
}

// Result is one page of a list response.
type Result[T any] struct {
	Data       []T  `json:"data"`
	TotalCount int  `json:"total_count"`
	Page       int  `json:"page"`
	PerPage    int  `json:"per_page"`
	TotalPages int  `json:"total_pages"`
	HasNext    bool `json:"has_next"`
	HasPrev    bool `json:"has_prev"`
}

// NewResult builds a Result for data, the page selected by params.
func NewResult[T any](data []T, totalCount int, params Params) Result[T] {
	totalPages := 0
	if params.PerPage > 0 {
		totalPages = (totalCount + params.PerPage - 1) / params.PerPage
	}
	if data == nil {
		data = []T{}
	}

	return Result[T]{
		Data:       data,
		TotalCount: totalCount,
		Page:       params.Page,
		PerPage:    params.PerPage,
		TotalPages: totalPages,
		HasNext:    params.Page < totalPages,
		HasPrev:    params.Page > 1,
	}
}
