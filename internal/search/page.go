package search

// Page is one window of a paginated collection. Page numbers start at 1.
type Page[T any] struct {
	Items []T
	Page  int
	Pages int
	Total int
}

// Paginate clamps page into [1, Pages] and returns that window. A size below 1 returns
// everything on a single page.
func Paginate[T any](items []T, page, size int) Page[T] {
	total := len(items)
	if size < 1 {
		size = total
	}
	pages := 1
	if size > 0 && total > 0 {
		pages = (total + size - 1) / size
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}

	start := (page - 1) * size
	end := start + size
	if end > total {
		end = total
	}
	if start > end {
		start = end
	}
	return Page[T]{Items: items[start:end], Page: page, Pages: pages, Total: total}
}
