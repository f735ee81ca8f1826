package common

type Pagination struct {
	Total int64 `json:"total"`
}

// SearchResponse is a list envelope. The gateway does not page, so Total is
// the number of items returned.
type SearchResponse[T any] struct {
	Data       T          `json:"data"`
	Pagination Pagination `json:"pagination"`
}

func NewSearchResponse[T any](data T, total int64) *SearchResponse[T] {
	return &SearchResponse[T]{Data: data, Pagination: Pagination{Total: total}}
}

// NewListResponse wraps a complete list; nil encodes as [].
func NewListResponse[T any](items []T) *SearchResponse[[]T] {
	if items == nil {
		items = []T{}
	}
	return NewSearchResponse(items, int64(len(items)))
}
