package view

import (
	"fmt"
)

const (
	// PageSize is the base visible count and the reveal step.
	PageSize = 20
	// RevealThreshold is the distance in pixels from the bottom of the
	// content within which a scroll reveals the next page.
	RevealThreshold = 500
)

// DateFilter is the date bucket an entry must fall in.
type DateFilter string

const (
	DateAll   DateFilter = "all"
	DateToday DateFilter = "today"
	DateWeek  DateFilter = "week"
)

var validDateFilters = map[DateFilter]bool{
	DateAll:   true,
	DateToday: true,
	DateWeek:  true,
}

// ParseDateFilter parses s, an empty string is DateAll.
func ParseDateFilter(s string) (DateFilter, error) {
	if s == "" {
		return DateAll, nil
	}
	if !validDateFilters[DateFilter(s)] {
		return "", fmt.Errorf("unknown date filter %q", s)
	}
	return DateFilter(s), nil
}

// Controls are the view controls of one dashboard.
type Controls struct {
	Search       string     `json:"search"`
	Date         DateFilter `json:"date"`
	NewestFirst  bool       `json:"newestFirst"`
	VisibleCount int        `json:"visibleCount"`
}

// DefaultControls match everything newest first with one page visible.
func DefaultControls() Controls {
	return Controls{
		Date:         DateAll,
		NewestFirst:  true,
		VisibleCount: PageSize,
	}
}

// ControlsUpdate carries the controls a client changed. Nil fields are kept.
type ControlsUpdate struct {
	Search      *string     `json:"search,omitempty"`
	Date        *DateFilter `json:"date,omitempty"`
	NewestFirst *bool       `json:"newestFirst,omitempty"`
	ToggleSort  bool        `json:"toggleSort,omitempty"`
}

// apply changes c in place and reports whether any filter or sort control
// changed, in which case the visible count is back at PageSize.
func (u ControlsUpdate) apply(c *Controls) bool {
	changed := false
	if u.Search != nil && *u.Search != c.Search {
		c.Search = *u.Search
		changed = true
	}
	if u.Date != nil && *u.Date != c.Date {
		c.Date = *u.Date
		changed = true
	}
	if u.NewestFirst != nil && *u.NewestFirst != c.NewestFirst {
		c.NewestFirst = *u.NewestFirst
		changed = true
	}
	if u.ToggleSort {
		c.NewestFirst = !c.NewestFirst
		changed = true
	}
	if changed {
		c.VisibleCount = PageSize
	}
	return changed
}
