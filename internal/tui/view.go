package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

// chromeLines is the number of lines consumed by the title, day
// header, load strip, footer, and status bar.
const chromeLines = 5

// barCell is the glyph run for one covered day of a stage bar.
const barCell = "████"

// View renders the timeline.
func (m Model) View() string {
	if m.width == 0 {
		return ""
	}
	if m.loading {
		return m.styles.MutedStyle.Render("Loading timeline...")
	}
	if m.mode == ModeHelp {
		return m.renderHelp()
	}
	if len(m.days) == 0 {
		return m.renderEmpty()
	}

	var b strings.Builder
	b.WriteString(m.renderTitle())
	b.WriteString("\n")
	b.WriteString(m.renderDayHeader())
	b.WriteString("\n")
	b.WriteString(m.renderLoadStrip())
	b.WriteString("\n")
	b.WriteString(m.renderGrid())
	b.WriteString(m.renderFooter())
	b.WriteString("\n")
	b.WriteString(m.renderStatus())
	return b.String()
}

func (m Model) renderEmpty() string {
	msg := "No dataset loaded.\n\nImport one first:\n\n  pubtimeline import <file.json|file.yaml>\n\nPress q to quit."
	return m.styles.MutedStyle.Render(msg)
}

func (m Model) renderTitle() string {
	title := m.styles.TitleStyle.Render("pubtimeline")
	rng := ""
	if m.rng != nil {
		rng = fmt.Sprintf("%s to %s", m.rng.Start.Format("2006-01-02"), m.rng.End.Format("2006-01-02"))
	}
	mode := "auto"
	if m.state.UserHasScrolled {
		mode = "manual"
	}
	line := fmt.Sprintf(" %s  %s  [%s]", title, m.styles.MutedStyle.Render(rng), mode)
	return ansi.Truncate(line, m.width, "")
}

// dayRange returns the window of day indexes to render, clamped to
// the loaded timeline.
func (m Model) dayRange() (start, end int) {
	w := m.state.DayWindow
	if w.Empty() || len(m.days) == 0 {
		return 0, -1
	}
	start, end = w.Start, w.End
	if start < 0 {
		start = 0
	}
	if end > len(m.days)-1 {
		end = len(m.days) - 1
	}
	return start, end
}

func (m Model) renderDayHeader() string {
	start, end := m.dayRange()
	today := time.Now()
	var b strings.Builder
	b.WriteString(m.styles.HeaderStyle.Render(fmt.Sprintf("%-6s", m.monthLabel(start))))
	for i := start; i <= end; i++ {
		cell := fmt.Sprintf("%02d  ", m.days[i].Date.Day())
		switch {
		case i == m.state.CenterDayIndex:
			b.WriteString(m.styles.CenterStyle.Render(cell))
		case sameDay(m.days[i].Date, today):
			b.WriteString(m.styles.DayCellTodayStyle.Render(cell))
		default:
			b.WriteString(m.styles.DayCellStyle.Render(cell))
		}
	}
	return ansi.Truncate(b.String(), m.width, "")
}

// monthLabel names the month of the first visible day.
func (m Model) monthLabel(start int) string {
	if start < 0 || start >= len(m.days) {
		return ""
	}
	return m.days[start].Date.Format("Jan")
}

func (m Model) renderLoadStrip() string {
	start, end := m.dayRange()
	var b strings.Builder
	b.WriteString(m.styles.MutedStyle.Render(fmt.Sprintf("%-6s", "load")))
	for i := start; i <= end; i++ {
		d := m.days[i]
		cell := fmt.Sprintf("%2d  ", d.Total())
		b.WriteString(m.loadStyle(d.Utilization).Render(cell))
	}
	return ansi.Truncate(b.String(), m.width, "")
}

func (m Model) loadStyle(u timeline.UtilizationLevel) lipgloss.Style {
	switch u {
	case timeline.UtilizationOver:
		return m.styles.LoadOverStyle
	case timeline.UtilizationHigh:
		return m.styles.LoadHighStyle
	default:
		return m.styles.LoadNormalStyle
	}
}

// renderGrid draws the packed stage rows inside the row window. Rows
// outside the window still occupy a line so vertical positions stay
// stable, but render blank.
func (m Model) renderGrid() string {
	dayStart, dayEnd := m.dayRange()
	rw := m.state.RowWindow
	lines := m.gridLines()

	var b strings.Builder
	for line := 0; line < lines; line++ {
		rowIdx := rw.Start + line
		if rowIdx >= 0 && rowIdx < m.rows.Len() && rw.Contains(rowIdx) {
			b.WriteString(m.renderRow(rowIdx, dayStart, dayEnd))
		}
		b.WriteString("\n")
	}
	return b.String()
}

// renderRow draws one packed row across the visible day columns.
func (m Model) renderRow(rowIdx, dayStart, dayEnd int) string {
	row := m.rows.Rows[rowIdx]
	var b strings.Builder
	b.WriteString(m.styles.MutedStyle.Render(fmt.Sprintf("%-6s", fmt.Sprintf("r%d", rowIdx))))
	for day := dayStart; day <= dayEnd; day++ {
		iv, ok := intervalAt(row, day)
		if !ok {
			b.WriteString("    ")
			continue
		}
		if day == iv.Start {
			label := fmt.Sprintf("%-4s", truncateStr(iv.ID, dayCellChars))
			b.WriteString(m.styles.BarLabelStyle.Render(label))
			continue
		}
		b.WriteString(m.styles.barStyleFor(iv.Color).Render(barCell))
	}
	return ansi.Truncate(b.String(), m.width, "")
}

// intervalAt finds the interval covering day within a packed row.
// Rows hold disjoint intervals so the first hit is the only one.
func intervalAt(row []timeline.StageInterval, day int) (timeline.StageInterval, bool) {
	for _, iv := range row {
		if iv.Contains(day) {
			return iv, true
		}
	}
	return timeline.StageInterval{}, false
}

func (m Model) renderFooter() string {
	day := m.centeredDay()
	if day == nil {
		return ""
	}
	line := fmt.Sprintf(" %s  %s", m.styles.HeaderStyle.Render(day.Date.Format("Mon Jan 02")), formatDayCounts(day))
	return ansi.Truncate(line, m.width, "")
}

func (m Model) renderStatus() string {
	if m.mode == ModeJump {
		return ansi.Truncate(" jump: "+m.jump.View(), m.width, "")
	}
	if m.statusMsg != "" {
		return ansi.Truncate(m.styles.StatusStyle.Render(" "+m.statusMsg+" "), m.width, "")
	}
	hints := "h/l scroll  j/k rows  t today  / jump  y copy  r reload  ? help  q quit"
	return ansi.Truncate(m.styles.HelpStyle.Render(" "+hints), m.width, "")
}

func (m Model) renderHelp() string {
	help := ` pubtimeline keys

   h / l        scroll one day left / right
   H / L        scroll one week
   g / G        first / last day
   j / k        scroll rows (takes over auto-scroll)
   pgup/pgdn    scroll a page of rows
   t            center today
   / or J       jump to a date (today, tomorrow, next-week, YYYY-MM-DD)
   y            copy centered day summary to clipboard
   r            reload the dataset
   q            quit

 Press esc to close.`
	return m.styles.HelpStyle.Render(help)
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
