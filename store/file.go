package store

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/roundtable-ai/roundtable/core"
)

// FileStore writes run records as pretty-printed JSON files. Writes go
// through a temp file and rename so a crash mid-write never leaves a
// truncated record behind.
type FileStore struct {
	path string
}

// NewFileStore creates a store writing to the given path. Parent directories
// are created on first save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Path returns the destination file path.
func (s *FileStore) Path() string { return s.path }

// Save implements Store.
func (s *FileStore) Save(ctx context.Context, rec *RunRecord) error {
	if err := ctx.Err(); err != nil {
		return &core.PersistenceError{Path: s.path, Err: err}
	}

	data, err := json.MarshalIndent(rec, "", "  ")
	if err != nil {
		return &core.PersistenceError{Path: s.path, Err: fmt.Errorf("encode record: %w", err)}
	}
	data = append(data, '\n')

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return &core.PersistenceError{Path: s.path, Err: err}
	}

	tmp, err := os.CreateTemp(dir, ".roundtable-*.json")
	if err != nil {
		return &core.PersistenceError{Path: s.path, Err: err}
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return &core.PersistenceError{Path: s.path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return &core.PersistenceError{Path: s.path, Err: err}
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return &core.PersistenceError{Path: s.path, Err: err}
	}
	return nil
}
