// Package model contains the request and result shapes shared by the service and CLI layers.
// I keep it lean and focused on data shapes without behavior.
package model

import "github.com/maxviazov/pager/internal/pagination"

// Direction names a page transition.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "prev"
	DirectionGoTo     Direction = "goto"
)

// PageRequest locates a page inside a result set.
// Zero ResultsPerPage / MaxPagesToDisplay fall back to configured defaults.
type PageRequest struct {
	CurrentPage       int `json:"current_page" yaml:"current_page"`
	TotalItems        int `json:"total_items" yaml:"total_items"`
	ResultsPerPage    int `json:"results_per_page" yaml:"results_per_page"`
	MaxPagesToDisplay int `json:"max_pages_to_display" yaml:"max_pages_to_display"`
}

// NavigateRequest asks to move from the page described by PageRequest.
// TargetPage is only read for DirectionGoTo.
type NavigateRequest struct {
	PageRequest
	Direction  Direction `json:"direction" yaml:"direction"`
	TargetPage int       `json:"target_page,omitempty" yaml:"target_page,omitempty"`
}

// Transition is the outcome of a navigation request.
// Changed is false when the move was a no-op (edge of the result set, same page, out of range target).
type Transition struct {
	Direction Direction       `json:"direction" yaml:"direction"`
	From      int             `json:"from" yaml:"from"`
	To        int             `json:"to" yaml:"to"`
	Changed   bool            `json:"changed" yaml:"changed"`
	Page      pagination.Page `json:"page" yaml:"page"`
	Meta      pagination.Meta `json:"meta" yaml:"meta"`
}
