package tui

import (
	"context"
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// datasetLoadedMsg carries a freshly computed timeline.
type datasetLoadedMsg struct {
	Range *dateutil.DateRange
	Days  []*timeline.DayRecord
	Rows  timeline.RowAssignment
}

// scrollSyncMsg signals that the controller published new scroll
// state and the model should refresh its snapshot.
type scrollSyncMsg struct{}

// autoScrollMsg carries a vertical auto-scroll command.
type autoScrollMsg struct {
	Offset float64
}

// animateTickMsg drives the vertical auto-scroll animation.
type animateTickMsg struct{}

// errMsg carries an error into the event loop.
type errMsg struct {
	Err error
}

// clearStatusMsg clears an expired status message.
type clearStatusMsg struct{}

// loadDataset reads the stored dataset and computes day aggregates
// and packed stage rows.
func loadDataset(repo timeline.Repository, mgr *timeline.Manager) tea.Cmd {
	return func() tea.Msg {
		ds, err := repo.Dataset(context.Background())
		if err != nil {
			return errMsg{Err: fmt.Errorf("loading dataset: %w", err)}
		}
		if ds == nil || ds.Range.StartDate == "" {
			return datasetLoadedMsg{}
		}

		rng, err := ds.Range.DateRange()
		if err != nil {
			return errMsg{Err: fmt.Errorf("dataset range: %w", err)}
		}

		days := mgr.FormattedDays(rng.Start, rng.End, ds.Elements, ds.Done, ds.Capacities, ds.Range.LMax)
		rows := mgr.StageRows(rng.Start, rng.Days(), ds.Stages)

		return datasetLoadedMsg{Range: rng, Days: days, Rows: rows}
	}
}

// waitForEvent relays the next controller event into the program.
func waitForEvent(events chan tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return <-events
	}
}

// statusExpiry schedules a status message sweep.
func statusExpiry(after time.Duration) tea.Cmd {
	return tea.Tick(after, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}
