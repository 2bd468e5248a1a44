package timeline

import (
	"testing"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

func TestFormattedDaysCacheIdentity(t *testing.T) {
	m := NewManager(nil)
	elements := []record.Element{
		{ID: "a", Date: "2024-01-02", Nat: "activity", Status: "pending"},
	}

	first := m.FormattedDays(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8)
	second := m.FormattedDays(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8)
	if len(first) != 5 {
		t.Fatalf("got %d days, want 5", len(first))
	}
	if &first[0] != &second[0] {
		t.Error("identical inputs must return the identical cached slice")
	}

	// Changing any input produces a fresh result with correct content.
	changed := append([]record.Element{}, elements...)
	changed[0].Status = "done"
	third := m.FormattedDays(day("2024-01-01"), day("2024-01-05"), changed, nil, nil, 8)
	if &first[0] == &third[0] {
		t.Error("changed inputs must recompute")
	}
	if third[1].CompletedCount != 1 {
		t.Errorf("recomputed day completed = %d, want 1", third[1].CompletedCount)
	}
}

func TestFormattedDaysClearCache(t *testing.T) {
	m := NewManager(nil)
	first := m.FormattedDays(day("2024-01-01"), day("2024-01-03"), nil, nil, nil, 8)
	m.ClearCache()
	second := m.FormattedDays(day("2024-01-01"), day("2024-01-03"), nil, nil, nil, 8)
	if &first[0] == &second[0] {
		t.Error("ClearCache must force a new result even with unchanged inputs")
	}
}

func TestFormattedDaysInvalidRangeDegradesToEmpty(t *testing.T) {
	m := NewManager(nil)
	days := m.FormattedDays(day("2024-01-05"), day("2024-01-01"), nil, nil, nil, 8)
	if len(days) != 0 {
		t.Errorf("invalid range should yield an empty result, got %d days", len(days))
	}
}

func TestStageRowsCache(t *testing.T) {
	m := NewManager(nil)
	stages := []record.Stage{stage("s1", "2024-01-01", "2024-01-03")}

	first := m.StageRows(day("2024-01-01"), 10, stages)
	second := m.StageRows(day("2024-01-01"), 10, stages)
	if first.Len() != 1 {
		t.Fatalf("got %d rows, want 1", first.Len())
	}
	if &first.Rows[0] != &second.Rows[0] {
		t.Error("identical inputs must return the identical cached rows")
	}
}

func TestCachesAreIndependent(t *testing.T) {
	m := NewManager(nil)
	elements := []record.Element{
		{ID: "a", Date: "2024-01-01", Nat: "task", Status: "pending"},
	}
	stages := []record.Stage{stage("s1", "2024-01-01", "2024-01-02")}

	days1 := m.FormattedDays(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8)
	m.StageRows(day("2024-01-01"), 5, stages)

	// Changing the stage list must not invalidate the day cache.
	moreStages := append([]record.Stage{}, stages...)
	moreStages = append(moreStages, stage("s2", "2024-01-03", "2024-01-04"))
	m.StageRows(day("2024-01-01"), 5, moreStages)

	days2 := m.FormattedDays(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8)
	if &days1[0] != &days2[0] {
		t.Error("stage changes must not invalidate the day-record cache")
	}

	// And a day-cache clear must not touch stage rows.
	rows1 := m.StageRows(day("2024-01-01"), 5, moreStages)
	m.ClearDayCache()
	rows2 := m.StageRows(day("2024-01-01"), 5, moreStages)
	if &rows1.Rows[0] != &rows2.Rows[0] {
		t.Error("day-cache clear must not invalidate the row cache")
	}
}

func TestDaysFingerprintSensitivity(t *testing.T) {
	elements := []record.Element{{ID: "a", Date: "2024-01-01", Nat: "task", Status: "pending"}}
	base := DaysFingerprint(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8)

	if again := DaysFingerprint(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 8); again != base {
		t.Error("identical inputs must fingerprint identically")
	}

	variants := []string{
		DaysFingerprint(day("2024-01-02"), day("2024-01-05"), elements, nil, nil, 8),
		DaysFingerprint(day("2024-01-01"), day("2024-01-06"), elements, nil, nil, 8),
		DaysFingerprint(day("2024-01-01"), day("2024-01-05"), nil, nil, nil, 8),
		DaysFingerprint(day("2024-01-01"), day("2024-01-05"), elements, []string{"a"}, nil, 8),
		DaysFingerprint(day("2024-01-01"), day("2024-01-05"), elements, nil, []record.Capacity{{Date: "2024-01-01", CapEff: 5}}, 8),
		DaysFingerprint(day("2024-01-01"), day("2024-01-05"), elements, nil, nil, 9),
	}
	for i, v := range variants {
		if v == base {
			t.Errorf("variant %d should change the fingerprint", i)
		}
	}
}

func TestRowsFingerprintSensitivity(t *testing.T) {
	stages := []record.Stage{stage("s1", "2024-01-01", "2024-01-03")}
	base := RowsFingerprint(day("2024-01-01"), 10, stages)

	if again := RowsFingerprint(day("2024-01-01"), 10, stages); again != base {
		t.Error("identical inputs must fingerprint identically")
	}
	if v := RowsFingerprint(day("2024-01-01"), 11, stages); v == base {
		t.Error("total days must affect the fingerprint")
	}
	changed := []record.Stage{stage("s1", "2024-01-01", "2024-01-04")}
	if v := RowsFingerprint(day("2024-01-01"), 10, changed); v == base {
		t.Error("stage dates must affect the fingerprint")
	}
}

func TestDaysAndRowsFingerprintsDisjoint(t *testing.T) {
	fp1 := DaysFingerprint(day("2024-01-01"), day("2024-01-05"), nil, nil, nil, 8)
	fp2 := RowsFingerprint(day("2024-01-01"), 5, nil)
	if fp1 == fp2 {
		t.Error("day and row fingerprints must never collide on equal inputs")
	}
}
