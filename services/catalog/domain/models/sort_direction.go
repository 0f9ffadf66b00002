package models

import (
	"fmt"
	"strings"
)

// SortDirection is the price ordering applied to a view.
type SortDirection string

const (
	SortNone       SortDirection = ""
	SortAscending  SortDirection = "asc"
	SortDescending SortDirection = "desc"
)

// ParseSortDirection accepts "asc" or "desc" in any casing.
func ParseSortDirection(s string) (SortDirection, error) {
	switch d := SortDirection(strings.ToLower(strings.TrimSpace(s))); d {
	case SortAscending, SortDescending:
		return d, nil
	default:
		return SortNone, fmt.Errorf("sort direction must be %q or %q, got %q", SortAscending, SortDescending, s)
	}
}

// String returns the underlying string value.
func (d SortDirection) String() string {
	return string(d)
}
