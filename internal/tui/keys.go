package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/dateutil"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m, tea.Quit
	}
	switch m.mode {
	case ModeJump:
		return m.handleJumpKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	default:
		return m.handleNormalKeys(msg)
	}
}

// handleNormalKeys handles keys in normal mode.
func (m Model) handleNormalKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q":
		return m, tea.Quit

	// Horizontal navigation, one day per step.
	case "h", "left":
		return m.scrollHorizontal(-m.effectiveDayWidth())
	case "l", "right":
		return m.scrollHorizontal(m.effectiveDayWidth())

	// Week jumps.
	case "H", "shift+left":
		return m.scrollHorizontal(-7 * m.effectiveDayWidth())
	case "L", "shift+right":
		return m.scrollHorizontal(7 * m.effectiveDayWidth())

	// Range ends.
	case "g", "home":
		return m.scrollToDay(0)
	case "G", "end":
		return m.scrollToDay(len(m.days) - 1)

	// Vertical navigation, one row per step. Manual scrolling hands
	// control to the user until the arbiter's recovery rule fires.
	case "j", "down":
		return m.scrollVertical(m.rowExtent())
	case "k", "up":
		return m.scrollVertical(-m.rowExtent())
	case "pgdown", "ctrl+d":
		_, h := m.viewportUnits()
		return m.scrollVertical(h)
	case "pgup", "ctrl+u":
		_, h := m.viewportUnits()
		return m.scrollVertical(-h)

	case "t":
		if m.rng != nil && m.rng.Contains(time.Now()) {
			return m.scrollToDay(m.rng.DayIndex(time.Now()))
		}
		m.statusMsg = "Today is outside the timeline range"
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, statusExpiry(3 * time.Second)

	case "/", "J":
		m.mode = ModeJump
		m.jump.SetValue("")
		m.jump.Focus()
		return m, textinput.Blink

	case "y":
		return m.copyDaySummary()

	case "r":
		m.manager.ClearCache()
		m.loading = true
		m.statusMsg = "Reloading..."
		return m, loadDataset(m.repo, m.manager)

	case "?":
		m.mode = ModeHelp
		return m, nil
	}

	return m, nil
}

// handleJumpKeys handles keys while the jump prompt is open.
func (m Model) handleJumpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = ModeNormal
		m.jump.Blur()
		m.jump.SetValue("")
		return m, nil

	case "enter":
		value := strings.TrimSpace(m.jump.Value())
		m.mode = ModeNormal
		m.jump.Blur()
		m.jump.SetValue("")
		if value == "" {
			return m, nil
		}
		return m.jumpTo(value)
	}

	var cmd tea.Cmd
	m.jump, cmd = m.jump.Update(msg)
	return m, cmd
}

// handleHelpKeys dismisses the help overlay.
func (m Model) handleHelpKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q", "?", "enter":
		m.mode = ModeNormal
	}
	return m, nil
}

// jumpTo parses a date expression and centers the matching day.
func (m Model) jumpTo(value string) (tea.Model, tea.Cmd) {
	target, err := dateutil.ParseJumpDate(value, time.Now())
	if err != nil {
		m.statusMsg = fmt.Sprintf("Cannot parse %q", value)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, statusExpiry(3 * time.Second)
	}
	if m.rng == nil || !m.rng.Contains(target) {
		m.statusMsg = fmt.Sprintf("%s is outside the timeline range", target.Format("2006-01-02"))
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, statusExpiry(3 * time.Second)
	}
	return m.scrollToDay(m.rng.DayIndex(target))
}

// scrollHorizontal shifts the horizontal offset and notifies the
// controller. The throttle stage recomputes center and windows.
func (m Model) scrollHorizontal(delta float64) (tea.Model, tea.Cmd) {
	m.hOffset = clampOffset(m.hOffset+delta, m.maxHorizontal())
	m.ctrl.HandleHorizontalScroll(m.hOffset)
	LogScroll("horizontal", m.hOffset)
	return m, nil
}

// scrollVertical shifts the vertical offset as a user action.
func (m Model) scrollVertical(delta float64) (tea.Model, tea.Cmd) {
	m.animStep = 0 // A manual move cancels any running animation.
	m.vOffset = clampOffset(m.vOffset+delta, m.maxVertical())
	m.ctrl.HandleVerticalScroll(m.vOffset)
	m.state = m.ctrl.State()
	LogScroll("vertical", m.vOffset)
	return m, nil
}

// copyDaySummary puts a plain-text summary of the centered day on the
// system clipboard.
func (m Model) copyDaySummary() (tea.Model, tea.Cmd) {
	day := m.centeredDay()
	if day == nil {
		m.statusMsg = "No day to copy"
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, statusExpiry(3 * time.Second)
	}
	if err := clipboard.WriteAll(buildDaySummary(day)); err != nil {
		m.statusMsg = fmt.Sprintf("Copy failed: %v", err)
		m.statusTime = time.Now().Add(3 * time.Second)
		return m, statusExpiry(3 * time.Second)
	}
	m.statusMsg = fmt.Sprintf("Copied %s", day.Date.Format("Mon Jan 2"))
	m.statusTime = time.Now().Add(3 * time.Second)
	return m, statusExpiry(3 * time.Second)
}
