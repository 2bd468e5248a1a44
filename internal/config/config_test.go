package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultLayout(t *testing.T) {
	l := DefaultLayout()
	if l.DayWidth != 45 || l.DayMargin != 5 {
		t.Errorf("unexpected day defaults: %+v", l)
	}
	if l.ScrollThrottleMs != 16 || l.ScrollDebounceMs != 90 {
		t.Errorf("unexpected scroll defaults: %+v", l)
	}
	if l.AnimationMs != 220 {
		t.Errorf("animation default = %d, want 220", l.AnimationMs)
	}
}

func TestNormalizeKeepsInRangeValues(t *testing.T) {
	l := Layout{
		DayWidth:         60,
		DayMargin:        2,
		RowHeight:        30,
		RowMargin:        6,
		BufferDays:       10,
		BufferRows:       4,
		ScrollThrottleMs: 32,
		ScrollDebounceMs: 120,
		AnimationMs:      300,
	}
	got := l.Normalize(nil)
	if got != l {
		t.Errorf("in-range layout should pass through unchanged: got %+v", got)
	}
}

func TestNormalizeClampsToDefaults(t *testing.T) {
	l := Layout{
		DayWidth:         500, // > 100
		DayMargin:        -1,  // < 0
		RowHeight:        30,
		RowMargin:        6,
		BufferDays:       0,    // < 1
		BufferRows:       4,
		ScrollThrottleMs: 2,    // < 8
		ScrollDebounceMs: 1000, // > 300
		AnimationMs:      300,
	}
	got := l.Normalize(nil)
	d := DefaultLayout()

	if got.DayWidth != d.DayWidth {
		t.Errorf("day_width = %v, want default %v", got.DayWidth, d.DayWidth)
	}
	if got.DayMargin != d.DayMargin {
		t.Errorf("day_margin = %v, want default %v", got.DayMargin, d.DayMargin)
	}
	if got.BufferDays != d.BufferDays {
		t.Errorf("buffer_days = %v, want default %v", got.BufferDays, d.BufferDays)
	}
	if got.ScrollThrottleMs != d.ScrollThrottleMs {
		t.Errorf("scroll_throttle_ms = %v, want default %v", got.ScrollThrottleMs, d.ScrollThrottleMs)
	}
	if got.ScrollDebounceMs != d.ScrollDebounceMs {
		t.Errorf("scroll_debounce_ms = %v, want default %v", got.ScrollDebounceMs, d.ScrollDebounceMs)
	}
	// In-range values survive alongside the clamped ones.
	if got.RowHeight != 30 || got.AnimationMs != 300 {
		t.Errorf("in-range values should be preserved: %+v", got)
	}
}

func TestLoadFromMissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), nil)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Layout != DefaultLayout() {
		t.Errorf("missing file should yield default layout: %+v", cfg.Layout)
	}
}

func TestLoadFromFileOverlay(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[layout]
day_width = 80
scroll_throttle_ms = 24

[storage]
db_path = "/tmp/test-timeline.db"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(path, nil)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Layout.DayWidth != 80 {
		t.Errorf("day_width = %v, want 80", cfg.Layout.DayWidth)
	}
	if cfg.Layout.ScrollThrottleMs != 24 {
		t.Errorf("scroll_throttle_ms = %v, want 24", cfg.Layout.ScrollThrottleMs)
	}
	// Fields absent from the file keep their defaults.
	if cfg.Layout.DayMargin != 5 {
		t.Errorf("day_margin = %v, want default 5", cfg.Layout.DayMargin)
	}
	if cfg.Storage.DBPath != "/tmp/test-timeline.db" {
		t.Errorf("db_path = %q", cfg.Storage.DBPath)
	}
}

func TestLoadFromOutOfRangeFileValueFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("[layout]\nday_width = 9999\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	cfg, err := LoadFrom(path, nil)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Layout.DayWidth != 45 {
		t.Errorf("out-of-range day_width should fall back to 45, got %v", cfg.Layout.DayWidth)
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("PUBTIMELINE_DAY_WIDTH", "72")
	t.Setenv("PUBTIMELINE_BUFFER_DAYS", "9")
	t.Setenv("PUBTIMELINE_DB_PATH", "/tmp/env.db")

	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"), nil)
	if err != nil {
		t.Fatalf("LoadFrom returned error: %v", err)
	}
	if cfg.Layout.DayWidth != 72 {
		t.Errorf("day_width = %v, want env override 72", cfg.Layout.DayWidth)
	}
	if cfg.Layout.BufferDays != 9 {
		t.Errorf("buffer_days = %v, want env override 9", cfg.Layout.BufferDays)
	}
	if cfg.Storage.DBPath != "/tmp/env.db" {
		t.Errorf("db_path = %q, want env override", cfg.Storage.DBPath)
	}
}

func TestLoadFromBadTOML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("not [valid toml"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFrom(path, nil); err == nil {
		t.Error("malformed TOML should surface an error")
	}
}
