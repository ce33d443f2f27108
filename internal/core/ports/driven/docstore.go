package driven

import (
	"context"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// DocumentStore persists the whole record set as a single document.
type DocumentStore interface {
	// Read loads the document.
	// Returns domain.ErrNotFound if no document has been written yet.
	Read(ctx context.Context) (*domain.Document, error)

	// Write replaces the stored document with doc.
	Write(ctx context.Context, doc *domain.Document) error

	// Path returns a human-readable location of the document.
	Path() string
}
