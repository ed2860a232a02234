package models

import (
	"strings"
	"time"
)

// DateRange buckets match the verifier view's date dropdown.
const (
	RangeAll   = "all"
	RangeToday = "today"
	RangeWeek  = "week"
	RangeMonth = "month"
)

// ProjectFilter narrows an already-fetched list. Filtering is in-memory and
// recomputed from the last fetched sequence whenever an input changes.
type ProjectFilter struct {
	// Search is a case-insensitive substring match on name and description.
	Search string
	// Status filters to a single status; empty or "all" keeps everything.
	Status string
	// DateRange is one of RangeAll, RangeToday, RangeWeek, RangeMonth.
	DateRange string
}

func (f ProjectFilter) Apply(projects []Project, now time.Time) []Project {
	filtered := make([]Project, 0, len(projects))

	search := strings.ToLower(strings.TrimSpace(f.Search))
	var cutoff time.Time
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	switch f.DateRange {
	case RangeToday:
		cutoff = today
	case RangeWeek:
		cutoff = today.AddDate(0, 0, -7)
	case RangeMonth:
		cutoff = today.AddDate(0, -1, 0)
	}

	for _, p := range projects {
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		if f.Status != "" && f.Status != "all" && string(p.Status) != f.Status {
			continue
		}
		if !cutoff.IsZero() && p.CreatedAt.Before(cutoff) {
			continue
		}
		filtered = append(filtered, p)
	}

	return filtered
}

type Stats struct {
	Submitted   int     `json:"submitted"`
	Approved    int     `json:"approved"`
	TotalAmount float64 `json:"total_amount"`
}

// ComputeStats aggregates over a (usually filtered) project list.
func ComputeStats(projects []Project) Stats {
	var stats Stats
	for _, p := range projects {
		stats.Submitted++
		if p.Status == StatusApproved {
			stats.Approved++
		}
		stats.TotalAmount += p.BudgetAmount()
	}
	return stats
}
