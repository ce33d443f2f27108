package memory

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
)

// Ensure DocumentStore implements the interface.
var _ driven.DocumentStore = (*DocumentStore)(nil)

// DocumentStore is an in-memory implementation of driven.DocumentStore.
// It keeps the encoded document so readers never share memory with writers.
type DocumentStore struct {
	mu     sync.RWMutex
	data   []byte
	writes int

	// WriteErr, when set, is returned by Write without storing anything.
	WriteErr error
}

// NewDocumentStore creates an empty store; Read returns domain.ErrNotFound.
func NewDocumentStore() *DocumentStore {
	return &DocumentStore{}
}

// NewDocumentStoreWith creates a store that already holds doc.
func NewDocumentStoreWith(doc *domain.Document) (*DocumentStore, error) {
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, err
	}
	return &DocumentStore{data: data}, nil
}

// Read returns a fresh copy of the stored document.
func (s *DocumentStore) Read(_ context.Context) (*domain.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.data == nil {
		return nil, domain.ErrNotFound
	}
	var doc domain.Document
	if err := json.Unmarshal(s.data, &doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// Write replaces the stored document.
func (s *DocumentStore) Write(_ context.Context, doc *domain.Document) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.WriteErr != nil {
		return s.WriteErr
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	s.data = data
	s.writes++
	return nil
}

// Path returns the store location.
func (s *DocumentStore) Path() string {
	return ":memory:"
}

// Writes returns how many successful writes have happened.
func (s *DocumentStore) Writes() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.writes
}

// Raw returns the last written encoding, or nil.
func (s *DocumentStore) Raw() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]byte(nil), s.data...)
}

// Delete forgets the stored document, as if the file had been removed.
func (s *DocumentStore) Delete() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data = nil
}
