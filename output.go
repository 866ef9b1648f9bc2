package serpjson

import "context"

// Output is a serialized record ready to be written.
type Output struct {
	// SourcePath is the HTML snapshot the record was extracted from.
	SourcePath string

	// Record is the extracted record.
	Record *Record

	// JSON is the encoded record.
	JSON []byte
}

// OutputStore persists outputs with atomic semantics.
// Save writes to a temporary location; Commit makes changes permanent;
// Abort discards pending changes.
type OutputStore interface {
	Save(ctx context.Context, out *Output) error
	Commit() error
	Abort() error
}
