package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [dataset_file]",
		Short: "Import a timeline dataset",
		Long: `Import a dataset (range, elements, stages, capacities) from a
YAML or JSON file, replacing any previously imported data.

Example:
  pubtimeline import ./timeline.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			path, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			info, err := os.Stat(path)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("dataset file does not exist: %s", path)
				}
				return fmt.Errorf("checking dataset file: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("dataset path is a directory: %s", path)
			}

			ds, err := record.DecodeDataset(path)
			if err != nil {
				return err
			}
			if _, err := ds.Range.DateRange(); err != nil {
				return fmt.Errorf("dataset range: %w", err)
			}

			if err := a.repo.ReplaceDataset(context.Background(), ds); err != nil {
				return fmt.Errorf("storing dataset: %w", err)
			}

			fmt.Printf("Imported %d elements, %d stages, %d capacity records from %s\n",
				len(ds.Elements), len(ds.Stages), len(ds.Capacities), path)
			return nil
		},
	}
	return cmd
}

// resolvePath makes a path absolute.
func resolvePath(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path %s: %w", path, err)
	}
	return abs, nil
}
