package scroll

import (
	"testing"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/timeline"
)

func ptr(f float64) *float64 { return &f }

func TestCenterDayIndexExample(t *testing.T) {
	// center position 2400 / effective width 95 = 25.26 -> 25
	got := CenterDayIndex(2000, 800, 100, 5, 100)
	if got != 25 {
		t.Errorf("CenterDayIndex = %d, want 25", got)
	}
}

func TestCenterDayIndexBounds(t *testing.T) {
	tests := []struct {
		name      string
		offset    float64
		totalDays int
		want      int
	}{
		{"negative offset clamps to 0", -5000, 100, 0},
		{"huge offset clamps to last day", 1e9, 100, 99},
		{"zero days", 500, 0, 0},
		{"negative days", 500, -3, 0},
	}
	for _, tt := range tests {
		if got := CenterDayIndex(tt.offset, 800, 45, 5, tt.totalDays); got != tt.want {
			t.Errorf("%s: got %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestCenterDayIndexDegenerateWidth(t *testing.T) {
	// margin >= width would divide by zero or flip sign; clamp to 0.
	if got := CenterDayIndex(100, 800, 5, 5, 50); got != 0 {
		t.Errorf("zero effective width should map to 0, got %d", got)
	}
	if got := CenterDayIndex(100, 800, 5, 10, 50); got != 0 {
		t.Errorf("negative effective width should map to 0, got %d", got)
	}
}

func TestCenterDayIndexPure(t *testing.T) {
	first := CenterDayIndex(1234, 800, 45, 5, 200)
	for i := 0; i < 10; i++ {
		if got := CenterDayIndex(1234, 800, 45, 5, 200); got != first {
			t.Fatalf("repeated call returned %d, first returned %d", got, first)
		}
	}
}

func rowsFixture() timeline.RowAssignment {
	return timeline.RowAssignment{Rows: [][]timeline.StageInterval{
		{{ID: "a", Start: 0, End: 10}},
		{{ID: "b", Start: 5, End: 15}},
	}}
}

func TestTargetRowOffsetDirection(t *testing.T) {
	rows := rowsFixture()
	// Day 7 sits inside both rows.
	right := TargetRowOffset(7, rows, 28, 4, false)
	if right == nil || *right != 1*(28+2*4) {
		t.Errorf("scrolling right should pick the higher row, got %v", right)
	}
	left := TargetRowOffset(7, rows, 28, 4, true)
	if left == nil || *left != 0 {
		t.Errorf("scrolling left should pick the lower row, got %v", left)
	}
}

func TestTargetRowOffsetSingleRow(t *testing.T) {
	rows := timeline.RowAssignment{Rows: [][]timeline.StageInterval{
		{{ID: "a", Start: 3, End: 8}},
	}}
	for _, left := range []bool{true, false} {
		got := TargetRowOffset(5, rows, 20, 2, left)
		if got == nil || *got != 0 {
			t.Errorf("single qualifying row should map to offset 0 (left=%v), got %v", left, got)
		}
	}
}

func TestTargetRowOffsetAdjacency(t *testing.T) {
	rows := timeline.RowAssignment{Rows: [][]timeline.StageInterval{
		{{ID: "a", Start: 10, End: 20}},
	}}
	// Day 9 is adjacent to the interval start; day 21 to its end.
	if got := TargetRowOffset(9, rows, 20, 2, false); got == nil {
		t.Error("adjacent day before the interval should qualify")
	}
	if got := TargetRowOffset(21, rows, 20, 2, false); got == nil {
		t.Error("adjacent day after the interval should qualify")
	}
	if got := TargetRowOffset(8, rows, 20, 2, false); got != nil {
		t.Errorf("day two steps away should not qualify, got %v", *got)
	}
}

func TestTargetRowOffsetNoRows(t *testing.T) {
	if got := TargetRowOffset(5, timeline.RowAssignment{}, 28, 4, false); got != nil {
		t.Errorf("empty assignment should yield nil, got %v", *got)
	}
}

func TestShouldAutoScroll(t *testing.T) {
	tests := []struct {
		name          string
		user, target  *float64
		scrollingLeft bool
		want          bool
	}{
		{"no manual scroll recorded", nil, ptr(10), false, true},
		{"no manual scroll, nil target", nil, nil, true, true},
		{"no target", ptr(5), nil, false, false},
		{"left, user above target", ptr(5), ptr(10), true, true},
		{"left, user below target", ptr(10), ptr(5), true, false},
		{"right, user below target", ptr(10), ptr(5), false, true},
		{"right, user above target", ptr(5), ptr(10), false, false},
		{"equality never triggers (left)", ptr(7), ptr(7), true, false},
		{"equality never triggers (right)", ptr(7), ptr(7), false, false},
	}
	for _, tt := range tests {
		if got := ShouldAutoScroll(tt.user, tt.target, tt.scrollingLeft); got != tt.want {
			t.Errorf("%s: got %v, want %v", tt.name, got, tt.want)
		}
	}
}
