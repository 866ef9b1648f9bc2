package mock

import (
	"context"

	"github.com/fwojciec/serpjson"
)

var _ serpjson.SnapshotService = (*SnapshotService)(nil)

// SnapshotService is a mock implementation of serpjson.SnapshotService.
type SnapshotService struct {
	CreateSnapshotFn   func(ctx context.Context, snap *serpjson.Snapshot, html string) error
	FindSnapshotByIDFn func(ctx context.Context, id string) (*serpjson.Snapshot, error)
	FindSnapshotsFn    func(ctx context.Context, filter serpjson.SnapshotFilter) ([]*serpjson.Snapshot, error)
	DeleteSnapshotFn   func(ctx context.Context, id string) error
}

func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *serpjson.Snapshot, html string) error {
	return s.CreateSnapshotFn(ctx, snap, html)
}

func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*serpjson.Snapshot, error) {
	return s.FindSnapshotByIDFn(ctx, id)
}

func (s *SnapshotService) FindSnapshots(ctx context.Context, filter serpjson.SnapshotFilter) ([]*serpjson.Snapshot, error) {
	return s.FindSnapshotsFn(ctx, filter)
}

func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	return s.DeleteSnapshotFn(ctx, id)
}
