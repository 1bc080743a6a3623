package usecase

// Pagination defaults and bounds for list endpoints.
const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// PageParams are normalized list pagination inputs.
type PageParams struct {
	Page  int `json:"page" query:"page"`
	Limit int `json:"limit" query:"limit"`
}

// Normalize clamps the params into their allowed ranges, applying defaults
// for zero values.
func (p PageParams) Normalize() PageParams {
	if p.Page < 1 {
		p.Page = DefaultPage
	}
	if p.Limit < 1 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return p
}

// Offset returns the zero-based index of the first item on the page.
func (p PageParams) Offset() int {
	return (p.Page - 1) * p.Limit
}

// PageMeta describes the page of a list response.
type PageMeta struct {
	Page            int  `json:"page"`
	Limit           int  `json:"limit"`
	Total           int  `json:"total"`
	TotalPages      int  `json:"totalPages"`
	HasNextPage     bool `json:"hasNextPage"`
	HasPreviousPage bool `json:"hasPreviousPage"`
}

// NewPageMeta computes paging metadata for a total item count.
func NewPageMeta(params PageParams, total int) PageMeta {
	totalPages := 0
	if total > 0 {
		totalPages = (total + params.Limit - 1) / params.Limit
	}

	return PageMeta{
		Page:            params.Page,
		Limit:           params.Limit,
		Total:           total,
		TotalPages:      totalPages,
		HasNextPage:     params.Page < totalPages,
		HasPreviousPage: params.Page > 1 && total > 0,
	}
}

// Paginate slices one page out of the full item list.
func Paginate[T any](items []T, params PageParams) []T {
	start := params.Offset()
	if start >= len(items) {
		return []T{}
	}

	end := start + params.Limit
	if end > len(items) {
		end = len(items)
	}

	return items[start:end]
}
