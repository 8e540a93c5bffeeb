// Package jsonfile persists each collection as a single JSON document under
// a data directory. Writes replace the whole file via a temp file and rename,
// so a crash mid-write never corrupts previously valid data.
package jsonfile

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
)

// Backend is the persistence contract the repositories operate over: whole
// collection reads and whole collection replaces. The file-backed Store is
// the production implementation; the memory adapter satisfies it for tests
// and dry runs.
type Backend interface {
	Load(collection string, out any) error
	Save(collection string, records any) error
}

// Store reads and writes whole collection files under one data directory.
type Store struct {
	dir string
}

var _ Backend = (*Store)(nil)

// NewStore creates the data directory if needed and returns a store over it.
func NewStore(dir string) (*Store, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("%w: creating data directory %s: %v", apperrors.ErrStorage, dir, err)
	}
	return &Store{dir: dir}, nil
}

// Dir returns the data directory this store operates on.
func (s *Store) Dir() string {
	return s.dir
}

func (s *Store) path(collection string) string {
	return filepath.Join(s.dir, collection+".json")
}

// Load decodes a collection file into out. An absent or empty file leaves
// out untouched, so callers start from an empty collection.
func (s *Store) Load(collection string, out any) error {
	data, err := os.ReadFile(s.path(collection))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("%w: reading %s: %v", apperrors.ErrStorage, collection, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", apperrors.ErrStorage, collection, err)
	}
	return nil
}

// Save encodes records and atomically replaces the collection file.
func (s *Store) Save(collection string, records any) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", apperrors.ErrStorage, collection, err)
	}

	tmp, err := os.CreateTemp(s.dir, collection+"-*.tmp")
	if err != nil {
		return fmt.Errorf("%w: creating temp file for %s: %v", apperrors.ErrStorage, collection, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("%w: writing %s: %v", apperrors.ErrStorage, collection, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: closing temp file for %s: %v", apperrors.ErrStorage, collection, err)
	}
	if err := os.Rename(tmpName, s.path(collection)); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("%w: replacing %s: %v", apperrors.ErrStorage, collection, err)
	}
	return nil
}
