package tui

import (
	"testing"
	"time"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

func makeDays(n int) []*timeline.DayRecord {
	base := time.Date(2021, 1, 4, 0, 0, 0, 0, time.UTC)
	days := make([]*timeline.DayRecord, n)
	for i := range days {
		days[i] = &timeline.DayRecord{Date: base.AddDate(0, 0, i)}
	}
	return days
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	m := New(nil, config.Default())
	t.Cleanup(m.ctrl.Close)
	return m
}

func TestViewportUnits(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.height = 20

	// 80 columns at 4 per day, each day 40 units wide.
	w, h := m.viewportUnits()
	if w != 800 {
		t.Errorf("viewport width = %v, want 800", w)
	}
	// 15 grid lines at 36 units per row.
	if h != 540 {
		t.Errorf("viewport height = %v, want 540", h)
	}
}

func TestCenterOffsetForDay(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.height = 20
	m.days = makeDays(100)

	// Day 60 center = 60*40 + 20; subtract half the 800-unit viewport.
	if got := m.centerOffsetForDay(60); got != 2020 {
		t.Errorf("offset = %v, want 2020", got)
	}
	if got := m.centerOffsetForDay(0); got != 0 {
		t.Errorf("offset for day 0 = %v, want 0", got)
	}
	// Last day clamps to the maximum offset, 100*40 - 800.
	if got := m.centerOffsetForDay(99); got != 3200 {
		t.Errorf("offset for last day = %v, want 3200", got)
	}
}

func TestMaxOffsetsNeverNegative(t *testing.T) {
	m := newTestModel(t)
	m.width = 400
	m.height = 100
	m.days = makeDays(3)

	if got := m.maxHorizontal(); got != 0 {
		t.Errorf("maxHorizontal = %v, want 0 when content fits", got)
	}
	if got := m.maxVertical(); got != 0 {
		t.Errorf("maxVertical = %v, want 0 when content fits", got)
	}
}

func TestCenteredDayBounds(t *testing.T) {
	m := newTestModel(t)
	if m.centeredDay() != nil {
		t.Error("expected nil centered day with no dataset")
	}

	m.days = makeDays(5)
	m.state.CenterDayIndex = 2
	if d := m.centeredDay(); d == nil || !d.Date.Equal(m.days[2].Date) {
		t.Errorf("centered day = %v, want day 2", d)
	}

	m.state.CenterDayIndex = 99
	if m.centeredDay() != nil {
		t.Error("expected nil centered day for out-of-range index")
	}
}
