package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

func (a *App) rowsCmd() *cobra.Command {
	var wide bool

	cmd := &cobra.Command{
		Use:   "rows",
		Short: "Print the packed stage rows",
		Long: `Pack the imported stages into non-overlapping display rows and
print one line per row. Each stage shows its resolved day-index span
within the active range.`,
		Example: `  pubtimeline rows
  pubtimeline rows --wide`,
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
			assignment := manager.StageRows(rng.Start, rng.Days(), ds.Stages)
			if assignment.Len() == 0 {
				fmt.Println("No stages in the imported range.")
				return nil
			}

			for i, row := range assignment.Rows {
				colorHeader.Printf("row %d:", i)
				for _, iv := range row {
					fmt.Printf(" %s[%d-%d]", iv.ID, iv.Start, iv.End)
				}
				fmt.Println()
				if wide {
					printRowBar(row, rng.Days())
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&wide, "wide", false, "Render each row as a day-grid bar")
	return cmd
}

// printRowBar draws a one-character-per-day bar for the row, truncated
// to the terminal width.
func printRowBar(row []timeline.StageInterval, totalDays int) {
	width := termWidth() - 2
	if totalDays < width {
		width = totalDays
	}
	var b strings.Builder
	day := 0
	for _, iv := range row {
		for ; day < iv.Start && day < width; day++ {
			b.WriteByte('.')
		}
		for ; day <= iv.End && day < width; day++ {
			b.WriteByte('#')
		}
	}
	for ; day < width; day++ {
		b.WriteByte('.')
	}
	colorMuted.Printf("  %s\n", b.String())
}
