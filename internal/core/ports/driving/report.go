package driving

import (
	"context"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// ReportService produces read-only views of the document.
type ReportService interface {
	// Leaderboard returns students ordered by total descending.
	// Equal totals keep document order. Returns domain.ErrNoRecords if empty.
	Leaderboard(ctx context.Context, sess *domain.Session) ([]domain.Standing, error)

	// View returns one row per student for subject, in document order.
	// Returns domain.ErrNoRecords if empty.
	View(ctx context.Context, sess *domain.Session, subject string) ([]domain.MarkRow, error)

	// Students returns copies of all students in document order.
	// Returns domain.ErrNoRecords if empty.
	Students(ctx context.Context, sess *domain.Session) ([]domain.Student, error)

	// Subjects returns every subject present, in first-seen order.
	Subjects(ctx context.Context, sess *domain.Session) []string
}
