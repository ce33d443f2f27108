package jsonfile

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
)

// Ensure Store implements the interface.
var _ driven.DocumentStore = (*Store)(nil)

// Store is a file-based implementation of driven.DocumentStore.
type Store struct {
	filePath string
}

// NewStore creates a store for the document at path.
// If path is empty, defaults to domain.DefaultDatabaseFile in the working directory.
func NewStore(path string) *Store {
	if path == "" {
		path = domain.DefaultDatabaseFile
	}
	return &Store{filePath: path}
}

// Read loads and decodes the document.
func (s *Store) Read(_ context.Context) (*domain.Document, error) {
	data, err := os.ReadFile(s.filePath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}

	var doc domain.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("decode %s: %w", s.filePath, err)
	}
	if doc.Students == nil {
		doc.Students = []domain.Student{}
	}
	return &doc, nil
}

// Write encodes doc with two-space indentation and overwrites the file.
func (s *Store) Write(_ context.Context, doc *domain.Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encode document: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(s.filePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	return os.WriteFile(s.filePath, data, 0o644)
}

// Path returns the document file path.
func (s *Store) Path() string {
	return s.filePath
}
