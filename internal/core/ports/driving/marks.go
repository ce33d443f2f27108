package driving

import (
	"context"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// MarksService applies mark updates.
type MarksService interface {
	// Update sets the student's mark for subject from raw user input.
	// The session's teacher must own subject. On success the document is
	// saved and a copy of the updated student is returned.
	//
	// Errors: domain.ErrAuthRequired, domain.ErrForbiddenSubject,
	// domain.ErrInvalidMark (as *domain.MarkError), domain.ErrNotFound.
	// No state changes on error.
	Update(ctx context.Context, sess *domain.Session, subject, rollNumber, rawMark string) (*domain.Student, error)
}
