package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// formatDayCounts renders the per-category completion counts and the
// capacity load of a day on one line.
func formatDayCounts(d *timeline.DayRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "act %d/%d  del %d/%d  task %d/%d",
		d.Activity.Completed, d.Activity.Total,
		d.Deliverable.Completed, d.Deliverable.Total,
		d.Task.Completed, d.Task.Total)
	if d.CapacityAvailable > 0 {
		fmt.Fprintf(&b, "  load %.1f/%.1f %s", d.CapacityUsed, d.CapacityAvailable, utilizationName(d.Utilization))
	}
	if d.Icon != "" {
		b.WriteString("  ")
		b.WriteString(d.Icon)
	}
	return b.String()
}

// buildDaySummary produces the plain-text day summary placed on the
// clipboard.
func buildDaySummary(d *timeline.DayRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s\n", d.Date.Format("Monday, January 2 2006"))
	fmt.Fprintf(&b, "activities:   %d done / %d\n", d.Activity.Completed, d.Activity.Total)
	fmt.Fprintf(&b, "deliverables: %d done / %d\n", d.Deliverable.Completed, d.Deliverable.Total)
	fmt.Fprintf(&b, "tasks:        %d done / %d\n", d.Task.Completed, d.Task.Total)
	if d.CapacityAvailable > 0 {
		fmt.Fprintf(&b, "capacity:     %.1f used / %.1f available (%s)\n", d.CapacityUsed, d.CapacityAvailable, utilizationName(d.Utilization))
	}
	return b.String()
}

func utilizationName(u timeline.UtilizationLevel) string {
	switch u {
	case timeline.UtilizationOver:
		return "over"
	case timeline.UtilizationHigh:
		return "high"
	default:
		return "normal"
	}
}

// truncateStr truncates a string to a display width of max cells
// without splitting runes.
func truncateStr(s string, max int) string {
	return ansi.Truncate(s, max, "")
}
