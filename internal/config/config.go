// Package config handles configuration loading from files, defaults,
// and environment variables, and clamps layout parameters to their
// documented safe ranges.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"go.uber.org/zap"
)

// Config holds the application configuration.
type Config struct {
	Layout  Layout        `toml:"layout"`
	Storage StorageConfig `toml:"storage"`
}

// Layout holds the numeric display parameters consumed by the scroll
// and windowing computations. Each parameter has a documented
// [min, max] range; out-of-range values fall back to the default and
// are reported, never fatal.
type Layout struct {
	DayWidth         float64 `toml:"day_width"`          // [20, 100], default 45
	DayMargin        float64 `toml:"day_margin"`         // [0, 20], default 5
	RowHeight        float64 `toml:"row_height"`         // [10, 60], default 28
	RowMargin        float64 `toml:"row_margin"`         // [0, 16], default 4
	BufferDays       int     `toml:"buffer_days"`        // [1, 20], default 5
	BufferRows       int     `toml:"buffer_rows"`        // [1, 10], default 3
	ScrollThrottleMs int     `toml:"scroll_throttle_ms"` // [8, 100], default 16
	ScrollDebounceMs int     `toml:"scroll_debounce_ms"` // [20, 300], default 90
	AnimationMs      int     `toml:"animation_ms"`       // [100, 500], default 220
}

// StorageConfig holds database settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		Layout:  DefaultLayout(),
		Storage: StorageConfig{DBPath: defaultDBPath()},
	}
}

// DefaultLayout returns the layout defaults.
func DefaultLayout() Layout {
	return Layout{
		DayWidth:         45,
		DayMargin:        5,
		RowHeight:        28,
		RowMargin:        4,
		BufferDays:       5,
		BufferRows:       3,
		ScrollThrottleMs: 16,
		ScrollDebounceMs: 90,
		AnimationMs:      220,
	}
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "pubtimeline.db"
	}
	return filepath.Join(home, ".local", "share", "pubtimeline", "pubtimeline.db")
}

// DefaultConfigPath returns the default config file path.
func DefaultConfigPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return "config.toml"
	}
	return filepath.Join(home, ".config", "pubtimeline", "config.toml")
}

// Load loads configuration from the default path.
func Load(logger *zap.Logger) (*Config, error) {
	return LoadFrom(DefaultConfigPath(), logger)
}

// LoadFrom loads configuration from the specified path. It starts with
// defaults, overlays file config if it exists, applies env overrides,
// then clamps layout parameters to their safe ranges. logger may be
// nil.
func LoadFrom(path string, logger *zap.Logger) (*Config, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	cfg := Default()

	if err := loadFromFile(path, cfg); err != nil {
		return nil, err
	}
	applyEnvOverrides(cfg)
	cfg.Storage.DBPath = expandPath(cfg.Storage.DBPath)
	cfg.Layout = cfg.Layout.Normalize(logger)

	if cfg.Storage.DBPath == "" {
		cfg.Storage.DBPath = defaultDBPath()
	}
	return cfg, nil
}

func loadFromFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil // File doesn't exist, use defaults
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
// Environment variables take precedence over file config.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("PUBTIMELINE_DB_PATH"); v != "" {
		cfg.Storage.DBPath = v
	}
	envFloat("PUBTIMELINE_DAY_WIDTH", &cfg.Layout.DayWidth)
	envFloat("PUBTIMELINE_DAY_MARGIN", &cfg.Layout.DayMargin)
	envFloat("PUBTIMELINE_ROW_HEIGHT", &cfg.Layout.RowHeight)
	envFloat("PUBTIMELINE_ROW_MARGIN", &cfg.Layout.RowMargin)
	envInt("PUBTIMELINE_BUFFER_DAYS", &cfg.Layout.BufferDays)
	envInt("PUBTIMELINE_BUFFER_ROWS", &cfg.Layout.BufferRows)
	envInt("PUBTIMELINE_SCROLL_THROTTLE_MS", &cfg.Layout.ScrollThrottleMs)
	envInt("PUBTIMELINE_SCROLL_DEBOUNCE_MS", &cfg.Layout.ScrollDebounceMs)
	envInt("PUBTIMELINE_ANIMATION_MS", &cfg.Layout.AnimationMs)
}

func envFloat(key string, dst *float64) {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			*dst = f
		}
	}
}

func envInt(key string, dst *int) {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			*dst = n
		}
	}
}

// expandPath expands ~ to the user's home directory.
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		return filepath.Join(home, path[2:])
	}
	return path
}

// Normalize clamps every layout parameter to its documented range.
// A value outside its range falls back to the default, and the
// adjustment is reported through the logger. Returns the adjusted copy.
func (l Layout) Normalize(logger *zap.Logger) Layout {
	if logger == nil {
		logger = zap.NewNop()
	}
	d := DefaultLayout()
	l.DayWidth = clampFloat(logger, "day_width", l.DayWidth, 20, 100, d.DayWidth)
	l.DayMargin = clampFloat(logger, "day_margin", l.DayMargin, 0, 20, d.DayMargin)
	l.RowHeight = clampFloat(logger, "row_height", l.RowHeight, 10, 60, d.RowHeight)
	l.RowMargin = clampFloat(logger, "row_margin", l.RowMargin, 0, 16, d.RowMargin)
	l.BufferDays = clampInt(logger, "buffer_days", l.BufferDays, 1, 20, d.BufferDays)
	l.BufferRows = clampInt(logger, "buffer_rows", l.BufferRows, 1, 10, d.BufferRows)
	l.ScrollThrottleMs = clampInt(logger, "scroll_throttle_ms", l.ScrollThrottleMs, 8, 100, d.ScrollThrottleMs)
	l.ScrollDebounceMs = clampInt(logger, "scroll_debounce_ms", l.ScrollDebounceMs, 20, 300, d.ScrollDebounceMs)
	l.AnimationMs = clampInt(logger, "animation_ms", l.AnimationMs, 100, 500, d.AnimationMs)
	return l
}

func clampFloat(logger *zap.Logger, name string, v, lo, hi, def float64) float64 {
	if v < lo || v > hi {
		logger.Warn("layout parameter out of range, using default",
			zap.String("param", name), zap.Float64("value", v), zap.Float64("default", def))
		return def
	}
	return v
}

func clampInt(logger *zap.Logger, name string, v, lo, hi, def int) int {
	if v < lo || v > hi {
		logger.Warn("layout parameter out of range, using default",
			zap.String("param", name), zap.Int("value", v), zap.Int("default", def))
		return def
	}
	return v
}
