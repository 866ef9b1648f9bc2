package main_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/fwojciec/serpjson"
	main "github.com/fwojciec/serpjson/cmd/serpjson"
	"github.com/fwojciec/serpjson/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeleteCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("deletes snapshot when --force is set", func(t *testing.T) {
		t.Parallel()

		var deletedID string
		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(_ context.Context, id string) error {
				deletedID = id
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    stdout,
			Stderr:    &bytes.Buffer{},
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "snap-123", Force: true}).Run(deps)

		require.NoError(t, err)
		assert.Equal(t, "snap-123", deletedID)
		assert.Contains(t, stdout.String(), "Deleted")
	})

	t.Run("requires --force flag", func(t *testing.T) {
		t.Parallel()

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:    context.Background(),
			Stdout: &bytes.Buffer{},
			Stderr: stderr,
		}

		err := (&main.DeleteCmd{ID: "snap-123"}).Run(deps)

		require.Error(t, err)
		assert.Contains(t, stderr.String(), "--force")
	})

	t.Run("returns ENOTFOUND for unknown snapshot", func(t *testing.T) {
		t.Parallel()

		snapshots := &mock.SnapshotService{
			DeleteSnapshotFn: func(context.Context, string) error {
				return serpjson.Errorf(serpjson.ENOTFOUND, "snapshot not found")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:       context.Background(),
			Stdout:    &bytes.Buffer{},
			Stderr:    stderr,
			Snapshots: snapshots,
		}

		err := (&main.DeleteCmd{ID: "nope", Force: true}).Run(deps)

		require.Error(t, err)
		assert.Equal(t, serpjson.ENOTFOUND, serpjson.ErrorCode(err))
		assert.Contains(t, stderr.String(), "snapshot not found")
	})
}
