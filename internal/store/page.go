package store

// Page carries pagination metadata for a list result.
type Page struct {
	Page    int `json:"page"`
	PerPage int `json:"per_page"`
	Total   int `json:"total"`
	Pages   int `json:"pages"`

	HasNext bool `json:"has_next"`
	HasPrev bool `json:"has_prev"`
}

// NewPage computes pagination metadata: pages = ceil(total/perPage), with a
// non-positive perPage producing zero pages rather than an error.
func NewPage(page, perPage, total int) Page {
	pages := 0
	if perPage > 0 {
		pages = (total + perPage - 1) / perPage
	}

	return Page{
		Page:    page,
		PerPage: perPage,
		Total:   total,
		Pages:   pages,
		HasNext: page < pages,
		HasPrev: page > 1,
	}
}

// Offset returns the zero-based row offset for the page, for use with
// LIMIT/OFFSET range scans.
func (p Page) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PerPage
}
