package filter

type PageInfo struct {
	Page  int `json:"page" yaml:"page"`
	Pages int `json:"pages" yaml:"pages"`
	Size  int `json:"size" yaml:"size"`
	Total int `json:"total" yaml:"total"`
}

// Page slices items (already filtered) to the 1-based page. Out-of-range pages
// clamp to the nearest valid one; a non-positive size means DefaultPageSize.
func Page[T any](items []T, page, size int) ([]T, PageInfo) {
	if size <= 0 {
		size = DefaultPageSize
	}
	total := len(items)
	pages := (total + size - 1) / size
	if pages == 0 {
		pages = 1
	}
	if page < 1 {
		page = 1
	}
	if page > pages {
		page = pages
	}
	start := (page - 1) * size
	end := min(start+size, total)
	info := PageInfo{Page: page, Pages: pages, Size: size, Total: total}
	if start >= total {
		return []T{}, info
	}
	return items[start:end], info
}
