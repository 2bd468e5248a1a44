package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/ui"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	logger, err := zap.NewProduction()
	if err != nil {
		return fmt.Errorf("creating logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	cfg, err := config.Load(logger)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	app := ui.NewApp(nil, cfg, logger)
	defer func() { _ = app.Close() }()
	return app.Execute()
}
