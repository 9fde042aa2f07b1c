package model

// DefaultPageSize is the page size used by every paginated listing.
const DefaultPageSize = 10

// Pagination describes where a page sits in the full result set.
type Pagination struct {
	CurrentPage int   `json:"current_page"`
	PerPage     int   `json:"per_page"`
	Total       int64 `json:"total"`
	LastPage    int   `json:"last_page"`
}

// Page is one page of a listing.
type Page[T any] struct {
	Items      []T        `json:"items"`
	Pagination Pagination `json:"pagination"`
}

// NormalizePage clamps a requested 1-based page number.
func NormalizePage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// NewPage wraps items with pagination metadata. LastPage is at least 1.
func NewPage[T any](items []T, total int64, page, perPage int) *Page[T] {
	if perPage <= 0 {
		perPage = DefaultPageSize
	}
	if items == nil {
		items = []T{}
	}
	lastPage := int((total + int64(perPage) - 1) / int64(perPage))
	if lastPage < 1 {
		lastPage = 1
	}
	return &Page[T]{
		Items: items,
		Pagination: Pagination{
			CurrentPage: NormalizePage(page),
			PerPage:     perPage,
			Total:       total,
			LastPage:    lastPage,
		},
	}
}
