// Package pagination holds the arithmetic for paginated result sets: page
// counts, visible page windows, record offsets and page transitions.
// Functions are stateless; the caller owns the current page.
package pagination

import "math"

// maxWindowHint bounds the up-front allocation for a page window.
const maxWindowHint = 1024

// PageChangeFunc is notified with the new page number when a transition happens.
type PageChangeFunc func(page int)

// PageNumbers returns the page numbers to expose for navigation, starting at
// currentPage and stopping at maxPagesToDisplay entries or pageCount,
// whichever comes first. The result is empty (never nil) when currentPage is
// past pageCount.
func PageNumbers(currentPage, pageCount, maxPagesToDisplay int) []int {
	n := windowLen(currentPage, pageCount, maxPagesToDisplay)
	pages := make([]int, 0, min(n, maxWindowHint))
	for i := 0; i < n; i++ {
		pages = append(pages, currentPage+i)
	}
	return pages
}

func windowLen(currentPage, pageCount, maxPagesToDisplay int) int {
	n := min(maxPagesToDisplay, pageCount-currentPage+1)
	if n < 0 {
		return 0
	}
	return n
}

// PageCount returns ceil(totalItems / maxItemsPerPage), never less than 1.
// A zero maxItemsPerPage yields 1.
func PageCount(totalItems, maxItemsPerPage int) int {
	if maxItemsPerPage == 0 {
		return 1
	}
	pages := int(math.Ceil(float64(totalItems) / float64(maxItemsPerPage)))
	return max(1, pages)
}

// Skip returns the zero-based index of the first record on currentPage.
// Inputs are not checked; a currentPage below 1 gives a negative offset.
func Skip(currentPage, resultsPerPage int) int {
	return (currentPage - 1) * resultsPerPage
}

// NextPage moves one page forward unless currentPage is already the last one.
func NextPage(currentPage, pageCount int, onPageChange PageChangeFunc) int {
	if currentPage < pageCount {
		return changeTo(currentPage+1, onPageChange)
	}
	return currentPage
}

// GoToPage jumps to targetPage when it lies in [1, pageCount] and differs
// from currentPage. Anything else is a no-op.
func GoToPage(currentPage, targetPage, pageCount int, onPageChange PageChangeFunc) int {
	if targetPage >= 1 && targetPage <= pageCount && targetPage != currentPage {
		return changeTo(targetPage, onPageChange)
	}
	return currentPage
}

// PreviousPage moves one page back, floored at page 1.
func PreviousPage(currentPage int, onPageChange PageChangeFunc) int {
	if currentPage > 1 {
		return changeTo(currentPage-1, onPageChange)
	}
	return currentPage
}

func changeTo(page int, onPageChange PageChangeFunc) int {
	if onPageChange != nil {
		onPageChange(page)
	}
	return page
}
