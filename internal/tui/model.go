// Package tui provides the interactive terminal view for pubtimeline.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/scroll"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal Mode = iota
	ModeJump        // Jump prompt open, capturing a date expression
	ModeHelp
)

// dayCellChars is how many terminal columns one day occupies.
const dayCellChars = 4

// Model is the main TUI model.
type Model struct {
	// Dependencies
	repo    timeline.Repository
	config  *config.Config
	manager *timeline.Manager

	// Scroll coordination. Throttle and debounce callbacks run on
	// timer goroutines; they hand results back through events so the
	// model is only ever mutated inside Update.
	ctrl   *scroll.Controller
	events chan tea.Msg

	// Loaded timeline
	rng     *dateutil.DateRange
	days    []*timeline.DayRecord
	rows    timeline.RowAssignment
	loading bool

	// State
	mode    Mode
	jump    textinput.Model
	hOffset float64
	vOffset float64
	state   scroll.State

	// Vertical auto-scroll animation
	animTarget float64
	animStep   int

	// Terminal dimensions
	width  int
	height int

	// Styles
	styles *Styles

	// Messages
	statusMsg  string
	statusTime time.Time

	// Error state
	err error
}

// New creates a new TUI model backed by the given repository.
func New(repo timeline.Repository, cfg *config.Config) Model {
	jump := textinput.New()
	jump.Placeholder = "today | tomorrow | next-week | YYYY-MM-DD"
	jump.CharLimit = 32
	jump.Width = 40

	styles := NewStyles()
	jump.PlaceholderStyle = styles.PromptPlaceholderStyle
	jump.TextStyle = styles.PromptTextStyle
	jump.PromptStyle = styles.PromptTextStyle

	events := make(chan tea.Msg, 64)
	ctrl := scroll.NewController(cfg.Layout, nil, func(offset float64) {
		select {
		case events <- autoScrollMsg{Offset: offset}:
		default:
		}
	})

	// Any change to the center index or the render windows wakes the
	// event loop so the next View reflects the new snapshot.
	notify := func() {
		select {
		case events <- scrollSyncMsg{}:
		default:
		}
	}
	ctrl.Center().Subscribe(func(int) { notify() })
	ctrl.DayWindow().Subscribe(func(scroll.Window) { notify() })
	ctrl.RowWindow().Subscribe(func(scroll.Window) { notify() })

	return Model{
		repo:    repo,
		config:  cfg,
		manager: timeline.NewManager(nil),
		ctrl:    ctrl,
		events:  events,
		mode:    ModeNormal,
		jump:    jump,
		loading: true,
		styles:  styles,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(
		loadDataset(m.repo, m.manager),
		waitForEvent(m.events),
	)
}

// Run starts the TUI.
func Run(repo timeline.Repository, cfg *config.Config) error {
	return RunWithDebug(repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(repo timeline.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	model := New(repo, cfg)
	p := tea.NewProgram(model, tea.WithAltScreen())
	finalModel, err := p.Run()
	if m, ok := finalModel.(Model); ok {
		m.ctrl.Close()
	}
	return err
}

// effectiveDayWidth is the horizontal extent one day occupies in
// layout units.
func (m Model) effectiveDayWidth() float64 {
	return m.config.Layout.DayWidth - m.config.Layout.DayMargin
}

// rowExtent is the vertical extent one row occupies in layout units.
func (m Model) rowExtent() float64 {
	return m.config.Layout.RowHeight + 2*m.config.Layout.RowMargin
}

// viewportUnits converts the terminal size into layout units. One day
// column spans dayCellChars characters and one row spans one line,
// so the unit-per-cell ratio follows from the layout parameters.
func (m Model) viewportUnits() (w, h float64) {
	w = float64(m.width) / dayCellChars * m.effectiveDayWidth()
	h = float64(m.gridLines()) * m.rowExtent()
	return w, h
}

// gridLines is the number of terminal lines available for stage rows
// after the header, load strip, footer, and status chrome.
func (m Model) gridLines() int {
	lines := m.height - chromeLines
	if lines < 1 {
		lines = 1
	}
	return lines
}

// maxHorizontal is the largest meaningful horizontal offset.
func (m Model) maxHorizontal() float64 {
	w, _ := m.viewportUnits()
	max := float64(len(m.days))*m.effectiveDayWidth() - w
	if max < 0 {
		max = 0
	}
	return max
}

// maxVertical is the largest meaningful vertical offset.
func (m Model) maxVertical() float64 {
	_, h := m.viewportUnits()
	max := float64(m.rows.Len())*m.rowExtent() - h
	if max < 0 {
		max = 0
	}
	return max
}

// centerOffsetForDay returns the horizontal offset that places the
// given day index at the viewport center.
func (m Model) centerOffsetForDay(dayIndex int) float64 {
	w, _ := m.viewportUnits()
	offset := float64(dayIndex)*m.effectiveDayWidth() + m.effectiveDayWidth()/2 - w/2
	if offset < 0 {
		offset = 0
	}
	if max := m.maxHorizontal(); offset > max {
		offset = max
	}
	return offset
}

// centeredDay returns the day record under the viewport center, or
// nil when no dataset is loaded.
func (m Model) centeredDay() *timeline.DayRecord {
	idx := m.state.CenterDayIndex
	if idx < 0 || idx >= len(m.days) {
		return nil
	}
	return m.days[idx]
}
