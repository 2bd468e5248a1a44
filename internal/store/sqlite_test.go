package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

func newTestStore(t *testing.T) *SQLite {
	t.Helper()
	s, err := New(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("creating store: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func sampleDataset() *record.Dataset {
	return &record.Dataset{
		Range: record.RangeInfo{StartDate: "2024-01-01", EndDate: "2024-01-31", LMax: 8},
		Elements: []record.Element{
			{ID: "e1", Date: "2024-01-02", Nat: "activity", Status: "done"},
			{ID: "e2", Date: "2024-01-03", Nat: "task", Status: "pending"},
		},
		Done: []string{"e2"},
		Stages: []record.Stage{
			{ID: "s1", Type: "phase", SDate: "2024-01-01", EDate: "2024-01-10", Color: "#336699", Elements: []string{"e1", "e2"}},
			{ID: "s2", Type: "review", SDate: "2024-01-08", EDate: "2024-01-12"},
		},
		Capacities: []record.Capacity{
			{Date: "2024-01-02", CapEff: 8, BusEff: 6, CompEff: 2, Icon: "ok"},
		},
	}
}

func TestReplaceAndLoadDataset(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceDataset(ctx, sampleDataset()); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	got, err := s.Dataset(ctx)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	if got.Range.StartDate != "2024-01-01" || got.Range.LMax != 8 {
		t.Errorf("unexpected range: %+v", got.Range)
	}
	if len(got.Elements) != 2 || got.Elements[0].ID != "e1" || got.Elements[1].Status != "pending" {
		t.Errorf("unexpected elements: %+v", got.Elements)
	}
	if len(got.Done) != 1 || got.Done[0] != "e2" {
		t.Errorf("unexpected done ids: %+v", got.Done)
	}
	if len(got.Stages) != 2 {
		t.Fatalf("got %d stages, want 2", len(got.Stages))
	}
	if len(got.Stages[0].Elements) != 2 || got.Stages[0].Elements[1] != "e2" {
		t.Errorf("stage element list not preserved: %+v", got.Stages[0].Elements)
	}
	if got.Stages[1].Elements != nil {
		t.Errorf("empty element list should round-trip as nil, got %+v", got.Stages[1].Elements)
	}
	if len(got.Capacities) != 1 || got.Capacities[0].BusEff != 6 {
		t.Errorf("unexpected capacities: %+v", got.Capacities)
	}
}

func TestReplaceDatasetOverwrites(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	if err := s.ReplaceDataset(ctx, sampleDataset()); err != nil {
		t.Fatal(err)
	}
	smaller := &record.Dataset{
		Range:    record.RangeInfo{StartDate: "2024-02-01", EndDate: "2024-02-05", LMax: 4},
		Elements: []record.Element{{ID: "x", Date: "2024-02-02", Nat: "task"}},
	}
	if err := s.ReplaceDataset(ctx, smaller); err != nil {
		t.Fatal(err)
	}

	got, err := s.Dataset(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if got.Range.StartDate != "2024-02-01" {
		t.Errorf("range not replaced: %+v", got.Range)
	}
	if len(got.Elements) != 1 || len(got.Stages) != 0 || len(got.Done) != 0 {
		t.Errorf("old rows survived the replace: %+v", got)
	}
}

func TestDatasetEmptyStore(t *testing.T) {
	s := newTestStore(t)

	got, err := s.Dataset(context.Background())
	if err != nil {
		t.Fatalf("Dataset on empty store: %v", err)
	}
	if got.Range.StartDate != "" || len(got.Elements) != 0 {
		t.Errorf("empty store should yield an empty dataset: %+v", got)
	}
}

func TestStageElementsWithSeparatorBytesRoundTrip(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	ds := &record.Dataset{
		Range: record.RangeInfo{StartDate: "2024-01-01", EndDate: "2024-01-31", LMax: 8},
		Stages: []record.Stage{
			{ID: "s1", Type: "phase", SDate: "2024-01-01", EDate: "2024-01-10", Elements: []string{"a,b", "c"}},
		},
	}
	if err := s.ReplaceDataset(ctx, ds); err != nil {
		t.Fatalf("ReplaceDataset: %v", err)
	}

	got, err := s.Dataset(ctx)
	if err != nil {
		t.Fatalf("Dataset: %v", err)
	}
	// An id containing a comma must come back as one item, not two.
	elms := got.Stages[0].Elements
	if len(elms) != 2 || elms[0] != "a,b" || elms[1] != "c" {
		t.Errorf("element ids mangled on round-trip: %+v", elms)
	}
}
