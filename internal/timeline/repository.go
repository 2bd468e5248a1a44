package timeline

import (
	"context"

	"github.com/PIXXID/swiip-pubdev-timeline-sub000/internal/record"
)

// Repository defines the storage interface for timeline datasets.
type Repository interface {
	// ReplaceDataset atomically replaces the stored dataset.
	ReplaceDataset(ctx context.Context, ds *record.Dataset) error

	// Dataset loads the stored dataset. Returns an empty dataset when
	// nothing has been imported yet.
	Dataset(ctx context.Context) (*record.Dataset, error)

	// Close releases any resources held by the repository.
	Close() error
}
