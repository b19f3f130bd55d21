package pagination

// TotalPages returns ceil(totalItems/pageSize), or 0 when pageSize is not positive.
func TotalPages(totalItems, pageSize int) int {
	if pageSize <= 0 || totalItems <= 0 {
		return 0
	}
	pages := totalItems / pageSize
	if totalItems%pageSize > 0 {
		pages++
	}
	return pages
}

// Offset returns the zero-based index of the first item on the page.
func (s State) Offset() int {
	if s.Page < 1 {
		return 0
	}
	return s.PageSize * (s.Page - 1)
}

// FirstItem returns the one-based index of the first item on the page.
func (s State) FirstItem() int {
	return s.Offset() + 1
}

// LastItem returns the one-based index of the last item on the page.
// total < 0 means the total is unknown and the value is not clamped.
func (s State) LastItem(total int) int {
	last := s.PageSize * s.Page
	if total >= 0 && last > total {
		return total
	}
	return last
}
