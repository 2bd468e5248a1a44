package record

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// DecodeDataset reads a dataset from a YAML or JSON file, picking the
// decoder from the file extension (.yaml/.yml/.json).
func DecodeDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	var ds Dataset
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &ds); err != nil {
			return nil, fmt.Errorf("parsing dataset %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported dataset format: %s", filepath.Ext(path))
	}

	return &ds, nil
}
