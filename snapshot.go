package serpjson

import (
	"context"
	"time"
)

// Snapshot is an archived extraction of one HTML file.
type Snapshot struct {
	ID          string    `json:"id"`
	SourcePath  string    `json:"sourcePath"`
	Title       string    `json:"title"`
	ContentHash string    `json:"contentHash"`
	Record      *Record   `json:"record"`
	ParsedAt    time.Time `json:"parsedAt"`
}

// Validate returns an error if the snapshot contains invalid fields.
func (s *Snapshot) Validate() error {
	if s.SourcePath == "" {
		return Errorf(EINVALID, "snapshot source path required")
	}
	if s.Record == nil {
		return Errorf(EINVALID, "snapshot record required")
	}
	return nil
}

// SnapshotService represents a service for managing archived snapshots.
type SnapshotService interface {
	// CreateSnapshot archives a snapshot. ID, ParsedAt, and ContentHash
	// are assigned by the service when empty.
	CreateSnapshot(ctx context.Context, snap *Snapshot, html string) error

	// FindSnapshotByID retrieves a snapshot by ID.
	// Returns ENOTFOUND if snapshot does not exist.
	FindSnapshotByID(ctx context.Context, id string) (*Snapshot, error)

	// FindSnapshots retrieves snapshots matching the filter,
	// most recent first.
	FindSnapshots(ctx context.Context, filter SnapshotFilter) ([]*Snapshot, error)

	// DeleteSnapshot permanently removes a snapshot.
	// Returns ENOTFOUND if snapshot does not exist.
	DeleteSnapshot(ctx context.Context, id string) error
}

// SnapshotFilter represents a filter for FindSnapshots.
type SnapshotFilter struct {
	ID         *string `json:"id"`
	SourcePath *string `json:"sourcePath"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
