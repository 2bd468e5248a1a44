package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

func (a *App) daysCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "days",
		Short: "Print the per-day aggregation",
		Long: `Print one line per calendar day in the imported range: element
counts per category, completion figures, and capacity load graded by
utilization level.`,
		Example: `  pubtimeline days`,
		RunE: func(_ *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}
			ds, err := a.repo.Dataset(context.Background())
			if err != nil {
				return fmt.Errorf("loading dataset: %w", err)
			}
			rng, err := ds.Range.DateRange()
			if err != nil {
				return fmt.Errorf("dataset range: %w", err)
			}

			manager := timeline.NewManager(a.logger)
			days := manager.FormattedDays(rng.Start, rng.End, ds.Elements, ds.Done, ds.Capacities, ds.Range.LMax)
			if len(days) == 0 {
				fmt.Println("No days in the imported range.")
				return nil
			}

			colorHeader.Printf("%-12s %-9s %-12s %-6s %-11s %s\n",
				"date", "activity", "deliverable", "task", "done/pend", "capacity")
			for _, d := range days {
				printDay(d)
			}
			return nil
		},
	}
	return cmd
}

func printDay(d *timeline.DayRecord) {
	fmt.Printf("%-12s %-9s %-12s %-6s %-11s ",
		d.Date.Format("2006-01-02"),
		counts(d.Activity),
		counts(d.Deliverable),
		counts(d.Task),
		fmt.Sprintf("%d/%d", d.CompletedCount, d.PendingCount),
	)

	load := fmt.Sprintf("%.1f/%.1f", d.CapacityUsed, d.CapacityAvailable)
	switch d.Utilization {
	case timeline.UtilizationOver:
		colorOver.Print(load)
	case timeline.UtilizationHigh:
		colorHigh.Print(load)
	default:
		colorNormal.Print(load)
	}
	if d.Icon != "" {
		colorMuted.Printf(" [%s]", d.Icon)
	}
	fmt.Println()
}

// counts renders a category as "completed/total", or "-" when empty.
func counts(c timeline.CategoryCount) string {
	if c.Total == 0 {
		return "-"
	}
	var b strings.Builder
	fmt.Fprintf(&b, "%d/%d", c.Completed, c.Total)
	return b.String()
}
