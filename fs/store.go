package fs

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"github.com/fwojciec/serpjson"
)

// Ensure FileStore implements serpjson.OutputStore at compile time.
var _ serpjson.OutputStore = (*FileStore)(nil)

// FileStore implements serpjson.OutputStore with atomic update semantics.
// Outputs are staged in a temporary directory and moved into the output
// directory on Commit. Files already in the output directory are left alone
// unless a new output has the same name.
type FileStore struct {
	baseDir string
	name    string

	mu       sync.Mutex
	prepared bool
}

// NewFileStore creates a new FileStore.
// baseDir is the parent directory, name is the output directory name.
// Files are staged in baseDir/name.tmp and moved to baseDir/name on Commit.
func NewFileStore(baseDir, name string) *FileStore {
	return &FileStore{
		baseDir: baseDir,
		name:    name,
	}
}

func (s *FileStore) tempDir() string {
	return filepath.Join(s.baseDir, s.name+".tmp")
}

func (s *FileStore) finalDir() string {
	return filepath.Join(s.baseDir, s.name)
}

// prepare clears what an interrupted run left in the temporary directory.
// It runs once per store.
func (s *FileStore) prepare() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.prepared {
		return nil
	}
	if err := os.RemoveAll(s.tempDir()); err != nil {
		return err
	}
	if err := os.MkdirAll(s.tempDir(), 0755); err != nil {
		return err
	}
	s.prepared = true
	return nil
}

// Save writes out.JSON to the temporary directory under OutputPath of its
// source. Two sources of one batch mapping to the same output name conflict.
func (s *FileStore) Save(ctx context.Context, out *serpjson.Output) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if out.SourcePath == "" {
		return serpjson.Errorf(serpjson.EINVALID, "output source path required")
	}

	if err := s.prepare(); err != nil {
		return err
	}

	name := OutputPath(out.SourcePath)
	f, err := os.OpenFile(filepath.Join(s.tempDir(), name), os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0644)
	if errors.Is(err, os.ErrExist) {
		return serpjson.Errorf(serpjson.ECONFLICT, "duplicate output %s for %s", name, out.SourcePath)
	} else if err != nil {
		return err
	}

	if _, err := f.Write(out.JSON); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// Commit moves every staged output into the output directory, creating it
// if needed, and removes the temporary directory.
func (s *FileStore) Commit() error {
	if err := s.prepare(); err != nil {
		return err
	}
	if err := os.MkdirAll(s.finalDir(), 0755); err != nil {
		return err
	}

	entries, err := os.ReadDir(s.tempDir())
	if err != nil {
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if err := os.Rename(filepath.Join(s.tempDir(), entry.Name()), filepath.Join(s.finalDir(), entry.Name())); err != nil {
			return err
		}
	}

	return os.RemoveAll(s.tempDir())
}

// Abort discards everything staged since the store was created.
func (s *FileStore) Abort() error {
	return os.RemoveAll(s.tempDir())
}
