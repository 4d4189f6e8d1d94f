package navigation

// DefaultPageSize is the list page size when none is configured
const DefaultPageSize = 10

// Window is one page of a sorted list
type Window[T any] struct {
	Items   []T
	Page    int
	Total   int
	HasPrev bool
	HasNext bool
}

// Paginate cuts page out of items. Negative pages count as 0 and a size below
// 1 falls back to DefaultPageSize. A page past the end is empty but still
// offers a way back.
func Paginate[T any](items []T, page, size int) Window[T] {
	if page < 0 {
		page = 0
	}
	if size < 1 {
		size = DefaultPageSize
	}

	w := Window[T]{Page: page, Total: len(items), HasPrev: page > 0}

	start := page * size
	if start < 0 || start >= len(items) {
		return w
	}
	end := start + size
	if end > len(items) {
		end = len(items)
	}

	w.Items = items[start:end:end]
	w.HasNext = end < len(items)
	return w
}

// PageCount is the number of non-empty pages for total items
func PageCount(total, size int) int {
	if size < 1 {
		size = DefaultPageSize
	}
	if total <= 0 {
		return 0
	}
	return (total + size - 1) / size
}
