// Package pagination computes page windows for count-based listings.
package pagination

// Page describes one window over a listing of total items.
type Page struct {
	Number    int
	Offset    int
	Limit     int
	PageCount int
	HasPrev   bool
	HasNext   bool
}

// Paginate computes the window for a 1-indexed page over total items.
// PageCount never drops below 1. A page past the end yields an empty window
// (Limit 0) instead of being clamped to the last page.
func Paginate(total, page, pageSize int) Page {
	if pageSize < 1 {
		pageSize = 1
	}
	if page < 1 {
		page = 1
	}

	pageCount := (total + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	offset := (page - 1) * pageSize
	limit := pageSize
	switch {
	case offset >= total:
		limit = 0
	case offset+limit > total:
		limit = total - offset
	}

	return Page{
		Number:    page,
		Offset:    offset,
		Limit:     limit,
		PageCount: pageCount,
		HasPrev:   page > 1,
		HasNext:   page < pageCount,
	}
}
