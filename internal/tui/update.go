package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// animateSteps is how many ticks a vertical auto-scroll animation is
// divided into. The tick interval follows from the configured
// animation duration.
const animateSteps = 8

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w, h := m.viewportUnits()
		m.ctrl.SetViewport(w, h)
		m.state = m.ctrl.State()
		return m, nil

	case datasetLoadedMsg:
		m.rng = msg.Range
		m.days = msg.Days
		m.rows = msg.Rows
		m.loading = false
		m.ctrl.SetTimeline(len(msg.Days), msg.Rows)
		m.state = m.ctrl.State()
		if m.rng != nil && m.rng.Contains(time.Now()) {
			return m.scrollToDay(m.rng.DayIndex(time.Now()))
		}
		return m, nil

	case scrollSyncMsg:
		m.state = m.ctrl.State()
		LogScrollState(m.state, "sync")
		return m, waitForEvent(m.events)

	case autoScrollMsg:
		LogScrollState(m.state, "auto_scroll")
		m.animTarget = clampOffset(msg.Offset, m.maxVertical())
		m.animStep = animateSteps
		return m, tea.Batch(m.animateTick(), waitForEvent(m.events))

	case animateTickMsg:
		if m.animStep <= 0 {
			return m, nil
		}
		m.animStep--
		remaining := float64(m.animStep) / animateSteps
		m.vOffset = m.animTarget + (m.vOffset-m.animTarget)*remaining
		if m.animStep == 0 {
			m.vOffset = m.animTarget
		}
		// Each frame moves the row window so the view tracks the
		// animated offset.
		m.ctrl.SetVerticalOffset(m.vOffset)
		m.state = m.ctrl.State()
		if m.animStep == 0 {
			return m, nil
		}
		return m, m.animateTick()

	case errMsg:
		m.err = msg.Err
		m.loading = false
		LogError("update", msg.Err)
		m.statusMsg = fmt.Sprintf("Error: %v", msg.Err)
		m.statusTime = time.Now().Add(5 * time.Second)
		return m, statusExpiry(5 * time.Second)

	case clearStatusMsg:
		if time.Now().After(m.statusTime) {
			m.statusMsg = ""
		}
		return m, nil
	}

	// Forward anything else to the jump prompt while it is open.
	if m.mode == ModeJump {
		var cmd tea.Cmd
		m.jump, cmd = m.jump.Update(msg)
		return m, cmd
	}

	return m, nil
}

// animateTick schedules the next animation frame.
func (m Model) animateTick() tea.Cmd {
	interval := time.Duration(m.config.Layout.AnimationMs) * time.Millisecond / animateSteps
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return animateTickMsg{}
	})
}

// scrollToDay centers the given day index and syncs the snapshot.
func (m Model) scrollToDay(dayIndex int) (tea.Model, tea.Cmd) {
	if dayIndex < 0 {
		dayIndex = 0
	}
	if n := len(m.days); n > 0 && dayIndex >= n {
		dayIndex = n - 1
	}
	m.hOffset = m.centerOffsetForDay(dayIndex)
	m.ctrl.HandleHorizontalScroll(m.hOffset)
	m.state = m.ctrl.State()
	return m, nil
}

func clampOffset(v, max float64) float64 {
	if v < 0 {
		return 0
	}
	if v > max {
		return max
	}
	return v
}
