package service

import (
	"github.com/rs/zerolog"

	"github.com/maxviazov/pager/internal/model"
	"github.com/maxviazov/pager/internal/pagination"
)

// paginationService validates page requests and delegates the arithmetic to package pagination.
type paginationService struct {
	defaults Defaults
	log      zerolog.Logger
}

// NewPaginationService returns a PaginationService; non-positive defaults fall back to 15 results and 10 pages.
func NewPaginationService(defaults Defaults, logger zerolog.Logger) PaginationService {
	l := logger.With().Str("module", "service").Str("component", "pagination").Logger()
	return &paginationService{defaults: normalizeDefaults(defaults), log: l}
}

func (s *paginationService) Describe(req model.PageRequest) (pagination.Meta, error) {
	req = withDefaults(req, s.defaults)
	if err := newInvalidInput(validatePageRequest(req)); err != nil {
		s.log.Debug().Interface("request", req).Interface("field_errors", FieldErrors(err)).Msg("page request validation failed")
		return pagination.Meta{}, err
	}
	return s.meta(req, req.CurrentPage), nil
}

func (s *paginationService) Navigate(req model.NavigateRequest) (model.Transition, error) {
	page := withDefaults(req.PageRequest, s.defaults)
	dir := normalizeDirection(req.Direction)

	ferrs := validatePageRequest(page)
	if !isValidDirection(dir) {
		ferrs = append(ferrs, FieldError{Field: "direction", Message: "must be one of next|prev|goto"})
	}
	if err := newInvalidInput(ferrs); err != nil {
		s.log.Debug().Str("direction_raw", string(req.Direction)).Interface("field_errors", ferrs).Msg("navigate request validation failed")
		return model.Transition{}, err
	}

	pageCount := pagination.PageCount(page.TotalItems, page.ResultsPerPage)
	changed := false
	onPageChange := func(p int) {
		changed = true
		s.log.Info().
			Str("direction", string(dir)).
			Int("from", page.CurrentPage).
			Int("to", p).
			Int("page_count", pageCount).
			Msg("page changed")
	}

	var to int
	switch dir {
	case model.DirectionNext:
		to = pagination.NextPage(page.CurrentPage, pageCount, onPageChange)
	case model.DirectionPrevious:
		to = pagination.PreviousPage(page.CurrentPage, onPageChange)
	case model.DirectionGoTo:
		to = pagination.GoToPage(page.CurrentPage, req.TargetPage, pageCount, onPageChange)
	}

	if !changed {
		s.log.Debug().
			Str("direction", string(dir)).
			Int("current_page", page.CurrentPage).
			Int("target_page", req.TargetPage).
			Int("page_count", pageCount).
			Msg("page unchanged")
	}

	return model.Transition{
		Direction: dir,
		From:      page.CurrentPage,
		To:        to,
		Changed:   changed,
		Page:      pagination.ForPage(to, page.ResultsPerPage),
		Meta:      s.meta(page, to),
	}, nil
}

func (s *paginationService) meta(req model.PageRequest, currentPage int) pagination.Meta {
	return pagination.NewMeta(currentPage, req.ResultsPerPage, req.TotalItems, req.MaxPagesToDisplay)
}
