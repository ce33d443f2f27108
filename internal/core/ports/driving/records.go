package driving

import (
	"context"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// RecordService loads and persists the record document.
type RecordService interface {
	// Open loads the document into a new session.
	// A missing document is created empty and written immediately.
	Open(ctx context.Context) (*domain.Session, error)

	// Save writes the session's document back to storage.
	Save(ctx context.Context, sess *domain.Session) error

	// Reload replaces the session's document with the stored one.
	// The logged-in teacher is kept.
	Reload(ctx context.Context, sess *domain.Session) error

	// Location returns where the document is stored.
	Location() string
}
