package ui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/config"
)

func (a *App) configCmd() *cobra.Command {
	var initialize bool

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Show configuration",
		Long: `Show the effective configuration after defaults, file overlay,
environment overrides, and range clamping.

With --init, write a config file with default values if none exists.`,
		Example: `  pubtimeline config
  pubtimeline config --init`,
		RunE: func(_ *cobra.Command, _ []string) error {
			path := config.DefaultConfigPath()
			if initialize {
				if err := writeDefaultConfig(path); err != nil {
					return err
				}
			}

			fmt.Printf("Config file: %s\n\n", path)
			data, err := toml.Marshal(a.config)
			if err != nil {
				return fmt.Errorf("marshaling config: %w", err)
			}
			fmt.Print(string(data))
			return nil
		},
	}

	cmd.Flags().BoolVar(&initialize, "init", false, "Create a config file with defaults if none exists")
	return cmd
}

func writeDefaultConfig(path string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Println("Config file already exists, leaving it untouched.")
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := toml.Marshal(config.Default())
	if err != nil {
		return fmt.Errorf("marshaling defaults: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	fmt.Println("Created config file with default values.")
	return nil
}
