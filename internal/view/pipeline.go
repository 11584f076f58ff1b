package view

import (
	"strings"
	"time"

	"github.com/paycort/paycort-admin/internal/entity"
)

const week = 7 * 24 * time.Hour

// Result is what a dashboard renders.
type Result struct {
	// Visible is the first VisibleCount entries of the matched set.
	Visible []entity.WaitlistEntry
	// TotalMatched is the size of the filtered and sorted set.
	TotalMatched int
	// Empty is set when nothing matched, so callers can tell "no entries
	// found" from an empty page.
	Empty bool
}

// Compute filters records by search term and date bucket, orders them and
// windows the result to c.VisibleCount. records must be newest first, as the
// feed delivers them. now fixes the current calendar day and week window, its
// location is the viewer's.
func Compute(records []entity.WaitlistEntry, c Controls, now time.Time) Result {
	matched := Matched(records, c, now)
	n := c.VisibleCount
	if n < 0 {
		n = 0
	}
	if n > len(matched) {
		n = len(matched)
	}
	return Result{
		Visible:      matched[:n:n],
		TotalMatched: len(matched),
		Empty:        len(matched) == 0,
	}
}

// Matched returns the filtered and sorted set, without the visible window.
// It never modifies records.
func Matched(records []entity.WaitlistEntry, c Controls, now time.Time) []entity.WaitlistEntry {
	term := strings.ToLower(c.Search)
	out := make([]entity.WaitlistEntry, 0, len(records))
	for i := range records {
		if !matchesSearch(&records[i], term) {
			continue
		}
		if !inBucket(&records[i], c.Date, now) {
			continue
		}
		out = append(out, records[i])
	}
	if !c.NewestFirst {
		reverse(out)
	}
	return out
}

// matchesSearch expects term already lower-cased.
func matchesSearch(e *entity.WaitlistEntry, term string) bool {
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(e.FirstName), term) ||
		strings.Contains(strings.ToLower(e.LastName), term) ||
		strings.Contains(strings.ToLower(e.Email), term) ||
		strings.Contains(strings.ToLower(e.Phone), term)
}

// inBucket excludes entries with a pending timestamp from every bucket but
// DateAll.
func inBucket(e *entity.WaitlistEntry, f DateFilter, now time.Time) bool {
	switch f {
	case DateToday:
		t, ok := e.Created()
		return ok && sameDay(t, now)
	case DateWeek:
		t, ok := e.Created()
		return ok && !t.Before(now.Add(-week))
	default:
		return true
	}
}

// sameDay compares calendar dates in the location of now.
func sameDay(t, now time.Time) bool {
	y1, m1, d1 := t.In(now.Location()).Date()
	y2, m2, d2 := now.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}

func reverse(es []entity.WaitlistEntry) {
	for i, j := 0, len(es)-1; i < j; i, j = i+1, j-1 {
		es[i], es[j] = es[j], es[i]
	}
}
