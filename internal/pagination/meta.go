package pagination

// Meta describes where a page sits within a result set.
type Meta struct {
	CurrentPage int   `json:"current_page"  yaml:"current_page"`
	PageSize    int   `json:"page_size"     yaml:"page_size"`
	TotalPages  int   `json:"total_pages"   yaml:"total_pages"`
	TotalItems  int   `json:"total_items"   yaml:"total_items"`
	Skip        int   `json:"skip"          yaml:"skip"`
	HasPrevious bool  `json:"has_previous"  yaml:"has_previous"`
	HasNext     bool  `json:"has_next"      yaml:"has_next"`
	Pages       []int `json:"pages"         yaml:"pages"`
}

// NewMeta builds page metadata for currentPage of totalItems split into
// pageSize chunks, with a navigation window of up to maxPagesToDisplay pages.
func NewMeta(currentPage, pageSize, totalItems, maxPagesToDisplay int) Meta {
	totalPages := PageCount(totalItems, pageSize)
	return Meta{
		CurrentPage: currentPage,
		PageSize:    pageSize,
		TotalPages:  totalPages,
		TotalItems:  totalItems,
		Skip:        Skip(currentPage, pageSize),
		HasPrevious: currentPage > 1,
		HasNext:     currentPage < totalPages,
		Pages:       PageNumbers(currentPage, totalPages, maxPagesToDisplay),
	}
}
