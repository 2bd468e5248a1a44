// Package scroll keeps the two timeline scroll axes synchronized: pure
// offset/index mapping functions, the auto-scroll arbiter, the throttled
// controller that owns live scroll state, and viewport windowing.
package scroll

import (
	"math"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// CenterDayIndex maps a horizontal scroll offset to the day index at
// the viewport center. The result is clamped to [0, totalDays-1]; a
// non-positive totalDays or day width yields 0. Pure: identical inputs
// always produce identical output.
func CenterDayIndex(scrollOffset, viewportWidth, dayWidth, dayMargin float64, totalDays int) int {
	if totalDays <= 0 {
		return 0
	}
	effectiveDayWidth := dayWidth - dayMargin
	if effectiveDayWidth <= 0 {
		return 0
	}
	centerPosition := scrollOffset + viewportWidth/2
	idx := int(math.Round(centerPosition / effectiveDayWidth))
	if idx < 0 {
		return 0
	}
	if idx >= totalDays {
		return totalDays - 1
	}
	return idx
}

// TargetRowOffset finds the vertical offset the row axis should reveal
// for the given center day. Among rows containing or adjacent to the
// center index, scrolling toward later dates (scrollingLeft false)
// picks the highest row index, scrolling back picks the lowest. Returns
// nil when the assignment is empty or no row qualifies. A found row r
// maps to offset r * (rowHeight + 2*rowMargin).
func TargetRowOffset(centerDayIndex int, rows timeline.RowAssignment, rowHeight, rowMargin float64, scrollingLeft bool) *float64 {
	candidates := rows.RowsAt(centerDayIndex)
	if len(candidates) == 0 {
		return nil
	}
	row := candidates[0]
	for _, r := range candidates[1:] {
		if scrollingLeft {
			if r < row {
				row = r
			}
		} else {
			if r > row {
				row = r
			}
		}
	}
	offset := float64(row) * (rowHeight + 2*rowMargin)
	return &offset
}

// ShouldAutoScroll decides whether the vertical axis may follow the
// horizontal one. A nil userOffset (no manual vertical scroll recorded)
// always allows it; a nil target never does. Otherwise the user must
// have scrolled past the target in the direction of travel; equality
// never triggers auto-scroll.
func ShouldAutoScroll(userOffset, target *float64, scrollingLeft bool) bool {
	if userOffset == nil {
		return true
	}
	if target == nil {
		return false
	}
	if scrollingLeft {
		return *userOffset < *target
	}
	return *userOffset > *target
}
