package models

import (
	"strings"

	"github.com/aleister1102/layoutdiff/internal/common/errorwrapper"
)

// Side identifies one pane of a comparison.
type Side string

const (
	// SideLeft is the preview document.
	SideLeft Side = "left"
	// SideRight is the published document.
	SideRight Side = "right"
)

// Sides lists both panes in display order.
var Sides = []Side{SideLeft, SideRight}

// Validate reports whether s is one of the defined sides.
func (s Side) Validate() error {
	switch s {
	case SideLeft, SideRight:
		return nil
	default:
		return errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidSide, "side", string(s), "side must be 'left' or 'right'")
	}
}

// Index maps the side to 0 (left) or 1 (right). Callers validate first.
func (s Side) Index() int {
	if s == SideRight {
		return 1
	}
	return 0
}

// ParseSide accepts "left"/"preview" and "right"/"published" in any case.
func ParseSide(value string) (Side, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "left", "preview":
		return SideLeft, nil
	case "right", "published":
		return SideRight, nil
	default:
		return "", errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidSide, "side", value, "side must be 'left' or 'right'")
	}
}

// Direction is the navigation direction through a match list.
type Direction string

const (
	DirectionNext     Direction = "next"
	DirectionPrevious Direction = "previous"
)

// ParseDirection accepts "next" and "previous" (also "prev").
func ParseDirection(value string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "next":
		return DirectionNext, nil
	case "previous", "prev":
		return DirectionPrevious, nil
	default:
		return "", errorwrapper.NewSentinelValidationError(errorwrapper.ErrInvalidDirection, "direction", value, "direction must be 'next' or 'previous'")
	}
}
