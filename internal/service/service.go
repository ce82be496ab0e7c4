// Package service wraps the pagination arithmetic with request validation,
// configured defaults and logging. The arithmetic itself stays permissive;
// this is the layer that refuses nonsense input.
package service

import (
	"errors"

	"github.com/maxviazov/pager/internal/model"
	"github.com/maxviazov/pager/internal/pagination"
)

// ErrInvalidInput is the marker error for aggregated validation failures.
// Field-level details are retrieved via FieldErrors(err).
var ErrInvalidInput = errors.New("invalid input")

// FieldError describes a single invalid field in a request.
type FieldError struct {
	Field   string `json:"field" yaml:"field"`
	Message string `json:"message" yaml:"message"`
}

// invalidInputError aggregates multiple FieldError instances and unwraps to ErrInvalidInput.
type invalidInputError struct {
	fields []FieldError
}

func (e *invalidInputError) Error() string        { return ErrInvalidInput.Error() }
func (e *invalidInputError) Unwrap() error        { return ErrInvalidInput }
func (e *invalidInputError) Fields() []FieldError { return e.fields }

// newInvalidInput builds an aggregated validation error if any field errors are present.
func newInvalidInput(fe []FieldError) error {
	if len(fe) == 0 {
		return nil
	}
	return &invalidInputError{fields: fe}
}

// InvalidField reports a single malformed request field that never reached the service,
// such as a page number that failed to parse.
func InvalidField(field, message string) error {
	return newInvalidInput([]FieldError{{Field: field, Message: message}})
}

// FieldErrors extracts field errors from an aggregated validation error.
func FieldErrors(err error) []FieldError {
	if err == nil {
		return nil
	}
	type feIface interface{ Fields() []FieldError }
	var v feIface
	if errors.As(err, &v) && errors.Is(err, ErrInvalidInput) {
		return v.Fields()
	}
	return nil
}

// Defaults are applied when a request leaves page size or window size at zero.
type Defaults struct {
	ResultsPerPage    int
	MaxPagesToDisplay int
}

// PaginationService defines page description and navigation use cases.
type PaginationService interface {
	Describe(req model.PageRequest) (pagination.Meta, error)
	Navigate(req model.NavigateRequest) (model.Transition, error)
}
