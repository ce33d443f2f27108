package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure RecordService implements the interface.
var _ driving.RecordService = (*RecordService)(nil)

// RecordService loads and saves the record document.
type RecordService struct {
	store driven.DocumentStore
	now   func() time.Time
	newID func() string
}

// NewRecordService creates a new record service.
func NewRecordService(store driven.DocumentStore) *RecordService {
	return &RecordService{
		store: store,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// Open loads the document into a new session.
// A missing document is created empty and written immediately; any other
// read failure (including a corrupt file) is returned and the file is left as is.
func (s *RecordService) Open(ctx context.Context) (*domain.Session, error) {
	logger.Section("Open Records")
	logger.Debug("Document path: %s", s.store.Path())

	created := false
	doc, err := s.store.Read(ctx)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		logger.Warn("No document at %s, creating an empty one", s.store.Path())
		doc = domain.NewDocument(s.now())
		if err := s.store.Write(ctx, doc); err != nil {
			return nil, fmt.Errorf("create document: %w", err)
		}
		created = true
	case err != nil:
		return nil, fmt.Errorf("load document %s: %w", s.store.Path(), err)
	}

	sess := domain.NewSession(s.newID(), doc)
	sess.Created = created
	logger.Info("Session %s opened with %d students", sess.ID, len(doc.Students))
	return sess, nil
}

// Save writes the session's document back to storage.
func (s *RecordService) Save(ctx context.Context, sess *domain.Session) error {
	if sess == nil || sess.Document == nil {
		return fmt.Errorf("save document: %w", domain.ErrInvalidInput)
	}
	if err := s.store.Write(ctx, sess.Document); err != nil {
		return fmt.Errorf("save document: %w", err)
	}
	logger.Debug("Session %s saved %d students to %s", sess.ID, len(sess.Document.Students), s.store.Path())
	return nil
}

// Reload replaces the session's document with the stored one.
func (s *RecordService) Reload(ctx context.Context, sess *domain.Session) error {
	if sess == nil {
		return fmt.Errorf("reload document: %w", domain.ErrInvalidInput)
	}
	doc, err := s.store.Read(ctx)
	if err != nil {
		return fmt.Errorf("reload document: %w", err)
	}
	sess.Document = doc
	logger.Debug("Session %s reloaded %d students", sess.ID, len(doc.Students))
	return nil
}

// Location returns where the document is stored.
func (s *RecordService) Location() string {
	return s.store.Path()
}
