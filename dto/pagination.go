package dto

// Page is the paginated list envelope: count, next, previous, results.
type Page[T any] struct {
	Count    int64   `json:"count"`
	Next     *string `json:"next"`
	Previous *string `json:"previous"`
	Results  []T     `json:"results"`
}

// PageRequest carries the 1-based page number and page size of a list call.
type PageRequest struct {
	Page     int
	PageSize int
}

// Offset returns the row offset of the requested page.
func (p PageRequest) Offset() int {
	if p.Page < 1 {
		return 0
	}
	return (p.Page - 1) * p.PageSize
}
