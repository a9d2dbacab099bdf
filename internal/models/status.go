package models

import "fmt"

// Status is the settlement state of an expense.
// Transitions only move forward: pending -> partial -> settled, or pending -> settled.
type Status int

const (
	// StatusUnspecified is the zero value; it matches any status in filters.
	StatusUnspecified Status = iota
	StatusPending
	StatusPartial
	StatusSettled
)

func (s Status) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusPartial:
		return "partial"
	case StatusSettled:
		return "settled"
	default:
		return "unspecified"
	}
}

// ParseStatus converts the wire name of a status. An empty string yields
// StatusUnspecified.
func ParseStatus(s string) (Status, error) {
	switch s {
	case "":
		return StatusUnspecified, nil
	case "pending":
		return StatusPending, nil
	case "partial":
		return StatusPartial, nil
	case "settled":
		return StatusSettled, nil
	default:
		return StatusUnspecified, fmt.Errorf("unknown status %q", s)
	}
}

// CanTransition reports whether an expense may move from s to next.
func (s Status) CanTransition(next Status) bool {
	switch s {
	case StatusPending:
		return next == StatusPartial || next == StatusSettled
	case StatusPartial:
		return next == StatusPartial || next == StatusSettled
	default:
		return false
	}
}
