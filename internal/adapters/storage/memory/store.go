// Package memory keeps whole collections in process memory behind the same
// backend contract as the file store. It backs tests and the CLI dry-run
// paths; nothing touches disk.
package memory

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/adapters/storage/jsonfile"
	"github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/apperrors"
	portsrepo "github.com/cesarw616/Sistema-de-Gest-o-Completo/internal/core/ports/repositories"
)

// Store holds each collection as its encoded JSON document. Loads decode a
// fresh copy, so callers never alias stored records.
type Store struct {
	mu          sync.RWMutex
	collections map[string]json.RawMessage
}

// NewStore returns an empty in-memory store.
func NewStore() *Store {
	return &Store{collections: make(map[string]json.RawMessage)}
}

var _ jsonfile.Backend = (*Store)(nil)

// Load decodes a collection into out. An absent collection leaves out
// untouched, matching the file store's behavior for a missing file.
func (s *Store) Load(collection string, out any) error {
	s.mu.RLock()
	data, ok := s.collections[collection]
	s.mu.RUnlock()

	if !ok {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("%w: decoding %s: %v", apperrors.ErrStorage, collection, err)
	}
	return nil
}

// Save encodes records and replaces the collection.
func (s *Store) Save(collection string, records any) error {
	data, err := json.Marshal(records)
	if err != nil {
		return fmt.Errorf("%w: encoding %s: %v", apperrors.ErrStorage, collection, err)
	}

	s.mu.Lock()
	s.collections[collection] = data
	s.mu.Unlock()
	return nil
}

// NewRepositoryProvider assembles the full repository set over a fresh
// in-memory store.
func NewRepositoryProvider() portsrepo.RepositoryProvider {
	return jsonfile.NewRepositoryProvider(NewStore())
}
