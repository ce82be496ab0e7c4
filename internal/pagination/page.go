package pagination

// Page is the limit/offset window a storage layer needs to fetch one page.
type Page struct {
	Limit  int `json:"limit" yaml:"limit"`
	Offset int `json:"offset" yaml:"offset"`
}

// ForPage translates a 1-based page number into a limit/offset window.
func ForPage(currentPage, resultsPerPage int) Page {
	return Page{Limit: resultsPerPage, Offset: Skip(currentPage, resultsPerPage)}
}

// PageResult carries the items of one page and the total count matching the query.
type PageResult[T any] struct {
	Items []T `json:"items" yaml:"items"`
	Total int `json:"total" yaml:"total"`
}

// PageCount reports how many pages of resultsPerPage the total spans.
func (r PageResult[T]) PageCount(resultsPerPage int) int {
	return PageCount(r.Total, resultsPerPage)
}
