package pagination

const (
	// DefaultPageSize is the standard page size when one is not provided.
	DefaultPageSize = 10
	// MaxPageSize caps how many rows any list query can request.
	MaxPageSize = 100
)

// Params holds page-based pagination inputs from controllers or services.
type Params struct {
	Page     int
	PageSize int
}

// Page describes one resolved page of a listing: the clamped page number and
// the derived totals that accompany every list response.
type Page struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NormalizePageSize enforces the configured default and maximum page sizes.
func NormalizePageSize(size int) int {
	if size <= 0 {
		return DefaultPageSize
	}
	if size > MaxPageSize {
		return MaxPageSize
	}
	return size
}

// Resolve clamps the requested page into [1, totalPages] for the given total
// row count. A total of zero still yields page 1 of 1 so clients always see a
// well-formed page.
func Resolve(params Params, total int64) Page {
	size := NormalizePageSize(params.PageSize)

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages < 1 {
		totalPages = 1
	}

	page := params.Page
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Page:       page,
		PageSize:   size,
		Total:      total,
		TotalPages: totalPages,
	}
}

// Offset returns the row offset for the resolved page.
func (p Page) Offset() int {
	return (p.Page - 1) * p.PageSize
}
