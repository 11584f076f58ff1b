package view

import (
	"time"

	"github.com/paycort/paycort-admin/internal/entity"
)

// Stats are the dashboard counters over the unfiltered record set.
type Stats struct {
	Total int `json:"total"`
	Today int `json:"today"`
	Week  int `json:"week"`
}

func ComputeStats(records []entity.WaitlistEntry, now time.Time) Stats {
	s := Stats{Total: len(records)}
	for i := range records {
		if inBucket(&records[i], DateToday, now) {
			s.Today++
		}
		if inBucket(&records[i], DateWeek, now) {
			s.Week++
		}
	}
	return s
}
