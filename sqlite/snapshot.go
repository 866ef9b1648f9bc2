package sqlite

import (
	"context"
	"database/sql"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/serpjson"
	"github.com/google/uuid"
)

// Compile-time interface verification.
var _ serpjson.SnapshotService = (*SnapshotService)(nil)

// SnapshotService implements serpjson.SnapshotService using SQLite.
type SnapshotService struct {
	db *DB
}

// NewSnapshotService creates a new SnapshotService.
func NewSnapshotService(db *DB) *SnapshotService {
	return &SnapshotService{db: db}
}

// hashContent computes the xxHash of content as a hex string.
func hashContent(content string) string {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], xxhash.Sum64String(content))
	return hex.EncodeToString(b[:])
}

const snapshotColumns = "id, source_path, title, content_hash, record, parsed_at"

// CreateSnapshot archives a snapshot of html. The ID is always generated;
// ParsedAt, Title, and ContentHash are derived when empty.
func (s *SnapshotService) CreateSnapshot(ctx context.Context, snap *serpjson.Snapshot, html string) error {
	if err := snap.Validate(); err != nil {
		return err
	}

	snap.ID = uuid.New().String()
	if snap.ParsedAt.IsZero() {
		snap.ParsedAt = time.Now()
	}
	snap.ParsedAt = snap.ParsedAt.UTC().Truncate(time.Second)
	if snap.ContentHash == "" {
		snap.ContentHash = hashContent(html)
	}
	if snap.Title == "" && snap.Record.SearchMetadata != nil {
		snap.Title = snap.Record.SearchMetadata.Title
	}

	record, err := json.Marshal(snap.Record)
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO snapshots (`+snapshotColumns+`)
		VALUES (?, ?, ?, ?, ?, ?)
	`, snap.ID, snap.SourcePath, snap.Title, snap.ContentHash, string(record),
		snap.ParsedAt.Format(time.RFC3339))

	return err
}

// FindSnapshotByID retrieves a snapshot by ID.
func (s *SnapshotService) FindSnapshotByID(ctx context.Context, id string) (*serpjson.Snapshot, error) {
	snap, err := scanSnapshot(s.db.QueryRowContext(ctx,
		"SELECT "+snapshotColumns+" FROM snapshots WHERE id = ?", id))
	if err == sql.ErrNoRows {
		return nil, serpjson.Errorf(serpjson.ENOTFOUND, "snapshot not found")
	}
	if err != nil {
		return nil, err
	}
	return snap, nil
}

// FindSnapshots retrieves snapshots matching the filter, most recent first.
func (s *SnapshotService) FindSnapshots(ctx context.Context, filter serpjson.SnapshotFilter) ([]*serpjson.Snapshot, error) {
	var query strings.Builder
	var args []any

	query.WriteString("SELECT " + snapshotColumns + " FROM snapshots WHERE 1=1")

	if filter.ID != nil {
		query.WriteString(" AND id = ?")
		args = append(args, *filter.ID)
	}
	if filter.SourcePath != nil {
		query.WriteString(" AND source_path = ?")
		args = append(args, *filter.SourcePath)
	}

	// rowid breaks ties between snapshots archived within the same second.
	query.WriteString(" ORDER BY parsed_at DESC, rowid DESC")

	appendPagination(&query, &args, filter.Limit, filter.Offset)

	rows, err := s.db.QueryContext(ctx, query.String(), args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var snaps []*serpjson.Snapshot
	for rows.Next() {
		snap, err := scanSnapshot(rows)
		if err != nil {
			return nil, err
		}
		snaps = append(snaps, snap)
	}

	return snaps, rows.Err()
}

// DeleteSnapshot permanently removes a snapshot.
func (s *SnapshotService) DeleteSnapshot(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, "DELETE FROM snapshots WHERE id = ?", id)
	if err != nil {
		return err
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return err
	}

	if rows == 0 {
		return serpjson.Errorf(serpjson.ENOTFOUND, "snapshot not found")
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanSnapshot(row scanner) (*serpjson.Snapshot, error) {
	var snap serpjson.Snapshot
	var record, parsedAt string

	if err := row.Scan(&snap.ID, &snap.SourcePath, &snap.Title, &snap.ContentHash, &record, &parsedAt); err != nil {
		return nil, err
	}

	snap.Record = &serpjson.Record{}
	if err := json.Unmarshal([]byte(record), snap.Record); err != nil {
		return nil, fmt.Errorf("failed to decode record: %w", err)
	}

	var err error
	snap.ParsedAt, err = parseRFC3339(parsedAt, "parsed_at")
	if err != nil {
		return nil, err
	}

	return &snap, nil
}
