// Package timeline is the computation core behind the interactive
// timeline: per-day aggregation, stage row packing, and the fingerprint
// caches in front of both.
package timeline

import (
	"time"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

// UtilizationLevel grades a day's load against its available capacity.
type UtilizationLevel int

const (
	UtilizationNormal UtilizationLevel = iota // used/available <= 0.8
	UtilizationHigh                           // <= 1.0
	UtilizationOver                           // over capacity
)

// CategoryCount holds total and completed element counts for one
// category on one day.
type CategoryCount struct {
	Total     int
	Completed int
}

// DayRecord is the aggregated view model for a single calendar day.
// Records are immutable once produced and replaced wholesale on cache
// invalidation; the index of a record equals its offset from the range
// start.
type DayRecord struct {
	Date          time.Time
	CapacityLimit float64

	Activity    CategoryCount
	Deliverable CategoryCount
	Task        CategoryCount

	CompletedCount int
	PendingCount   int
	UniqueIDs      map[string]struct{}

	CapacityUsed      float64
	CapacityAvailable float64
	Utilization       UtilizationLevel
	Icon              string

	// Row is an optional display-row hint set by the rendering layer.
	Row *int
}

// Category returns the counts for the given category.
func (d *DayRecord) Category(c record.Category) CategoryCount {
	switch c {
	case record.CategoryActivity:
		return d.Activity
	case record.CategoryDeliverable:
		return d.Deliverable
	default:
		return d.Task
	}
}

// Total returns the number of unique elements aggregated into the day.
func (d *DayRecord) Total() int {
	return len(d.UniqueIDs)
}

// BuildDays produces one DayRecord per calendar day in [start, end],
// folding in elements, the done-id list, and capacity figures.
// capacityLimit is the per-day ceiling (lmax).
//
// Returns dateutil.ErrEndDateBeforeStart when end precedes start;
// callers are expected to degrade to an empty result. Malformed
// elements and out-of-range dates are skipped, never fatal. Elements
// are deduplicated by id: an id seen twice on the same day counts once.
func BuildDays(start, end time.Time, elements []record.Element, doneIDs []string, capacities []record.Capacity, capacityLimit float64) ([]*DayRecord, error) {
	rng, err := dateutil.Range(start, end)
	if err != nil {
		return nil, err
	}

	days := make([]*DayRecord, rng.Days())
	for i := range days {
		days[i] = &DayRecord{
			Date:          rng.DayAt(i),
			CapacityLimit: capacityLimit,
			UniqueIDs:     make(map[string]struct{}),
		}
	}

	done := make(map[string]struct{}, len(doneIDs))
	for _, id := range doneIDs {
		done[id] = struct{}{}
	}

	for _, e := range elements {
		if !e.Valid() {
			continue
		}
		idx := rng.DayIndex(e.Day())
		if idx < 0 || idx >= len(days) {
			continue
		}
		day := days[idx]
		if _, seen := day.UniqueIDs[e.ID]; seen {
			continue
		}
		day.UniqueIDs[e.ID] = struct{}{}

		completed := record.IsDoneStatus(e.Status)
		if !completed {
			if _, ok := done[e.ID]; ok {
				completed = true
			}
		}

		cat, _ := record.ParseCategory(e.Nat)
		bump(day, cat, completed)
		if completed {
			day.CompletedCount++
		} else {
			day.PendingCount++
		}
	}

	for _, c := range capacities {
		day, err := time.Parse("2006-01-02", c.Date)
		if err != nil {
			continue
		}
		idx := rng.DayIndex(day)
		if idx < 0 || idx >= len(days) {
			continue
		}
		d := days[idx]
		d.CapacityUsed = c.BusEff
		d.CapacityAvailable = c.CapEff
		d.Utilization = utilization(c.BusEff, c.CapEff)
		d.Icon = c.Icon
	}

	return days, nil
}

func bump(d *DayRecord, cat record.Category, completed bool) {
	var cc *CategoryCount
	switch cat {
	case record.CategoryActivity:
		cc = &d.Activity
	case record.CategoryDeliverable:
		cc = &d.Deliverable
	default:
		cc = &d.Task
	}
	cc.Total++
	if completed {
		cc.Completed++
	}
}

// utilization grades used against available capacity. A zero or absent
// available capacity is treated as normal load.
func utilization(used, available float64) UtilizationLevel {
	if available <= 0 {
		return UtilizationNormal
	}
	ratio := used / available
	switch {
	case ratio <= 0.8:
		return UtilizationNormal
	case ratio <= 1.0:
		return UtilizationHigh
	default:
		return UtilizationOver
	}
}
