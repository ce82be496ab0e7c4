package service

import (
	"strings"

	"github.com/maxviazov/pager/internal/model"
)

const (
	defaultResultsPerPage    = 15
	defaultMaxPagesToDisplay = 10
)

func normalizeDefaults(d Defaults) Defaults {
	if d.ResultsPerPage <= 0 {
		d.ResultsPerPage = defaultResultsPerPage
	}
	if d.MaxPagesToDisplay <= 0 {
		d.MaxPagesToDisplay = defaultMaxPagesToDisplay
	}
	return d
}

// withDefaults fills zero sizes only; negative values are left for validation to reject.
func withDefaults(req model.PageRequest, d Defaults) model.PageRequest {
	if req.ResultsPerPage == 0 {
		req.ResultsPerPage = d.ResultsPerPage
	}
	if req.MaxPagesToDisplay == 0 {
		req.MaxPagesToDisplay = d.MaxPagesToDisplay
	}
	return req
}

func validatePageRequest(req model.PageRequest) []FieldError {
	var ferrs []FieldError
	if req.CurrentPage < 1 {
		ferrs = append(ferrs, FieldError{Field: "current_page", Message: "must be >= 1"})
	}
	if req.TotalItems < 0 {
		ferrs = append(ferrs, FieldError{Field: "total_items", Message: "must be >= 0"})
	}
	if req.ResultsPerPage < 1 {
		ferrs = append(ferrs, FieldError{Field: "results_per_page", Message: "must be >= 1"})
	}
	if req.MaxPagesToDisplay < 1 {
		ferrs = append(ferrs, FieldError{Field: "max_pages_to_display", Message: "must be >= 1"})
	}
	return ferrs
}

func normalizeDirection(d model.Direction) model.Direction {
	return model.Direction(strings.ToLower(strings.TrimSpace(string(d))))
}

func isValidDirection(d model.Direction) bool {
	switch d {
	case model.DirectionNext, model.DirectionPrevious, model.DirectionGoTo:
		return true
	default:
		return false
	}
}
