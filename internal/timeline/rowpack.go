package timeline

import (
	"sort"
	"time"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

// StageInterval is a stage resolved to day indices within the active
// range. End is inclusive.
type StageInterval struct {
	ID       string
	Kind     string
	Start    int
	End      int
	Color    string
	Elements []string
}

// Span returns the number of days the interval covers.
func (s StageInterval) Span() int {
	return s.End - s.Start + 1
}

// Contains reports whether the day index falls inside the interval.
func (s StageInterval) Contains(day int) bool {
	return day >= s.Start && day <= s.End
}

// RowAssignment lays overlapping stage intervals out into display rows.
// Within a row, intervals are sorted by Start and never overlap:
// for consecutive intervals, prev.End < next.Start.
type RowAssignment struct {
	Rows [][]StageInterval
}

// Len returns the number of rows.
func (r RowAssignment) Len() int {
	return len(r.Rows)
}

// RowsAt returns the indices of rows holding an interval that contains
// or is adjacent to the given day index, in packing order.
func (r RowAssignment) RowsAt(day int) []int {
	var out []int
	for i, row := range r.Rows {
		for _, iv := range row {
			if day >= iv.Start-1 && day <= iv.End+1 {
				out = append(out, i)
				break
			}
		}
	}
	return out
}

// ResolveIntervals converts raw stages into day-indexed intervals.
// Stages with unparseable dates, reversed ranges, or ranges entirely
// outside [0, totalDays) are dropped; partially overlapping ranges are
// clipped to the visible range. Input order is preserved.
func ResolveIntervals(stages []record.Stage, rangeStart time.Time, totalDays int) []StageInterval {
	if totalDays <= 0 {
		return nil
	}
	out := make([]StageInterval, 0, len(stages))
	for _, s := range stages {
		sdate, err := time.Parse("2006-01-02", s.SDate)
		if err != nil {
			continue
		}
		edate, err := time.Parse("2006-01-02", s.EDate)
		if err != nil {
			continue
		}
		start := dateutil.DaysBetween(rangeStart, sdate)
		end := dateutil.DaysBetween(rangeStart, edate)
		if end < start {
			continue
		}
		if end < 0 || start >= totalDays {
			continue
		}
		out = append(out, StageInterval{
			ID:       s.ID,
			Kind:     s.Type,
			Start:    max(start, 0),
			End:      min(end, totalDays-1),
			Color:    s.Color,
			Elements: s.Elements,
		})
	}
	return out
}

// PackRows assigns intervals to a minimal number of non-overlapping
// rows using greedy first-fit: intervals are processed in Start order
// (ties keep input order) and placed in the first row whose last
// interval ends strictly before the new interval starts.
func PackRows(intervals []StageInterval) RowAssignment {
	sorted := make([]StageInterval, len(intervals))
	copy(sorted, intervals)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Start < sorted[j].Start
	})

	var rows [][]StageInterval
	for _, iv := range sorted {
		placed := false
		for i, row := range rows {
			last := row[len(row)-1]
			if last.End < iv.Start {
				rows[i] = append(rows[i], iv)
				placed = true
				break
			}
		}
		if !placed {
			rows = append(rows, []StageInterval{iv})
		}
	}
	return RowAssignment{Rows: rows}
}

// PackStages resolves and packs raw stages in one step.
func PackStages(stages []record.Stage, rangeStart time.Time, totalDays int) RowAssignment {
	return PackRows(ResolveIntervals(stages, rangeStart, totalDays))
}
