package services

import (
	"context"
	"fmt"
	"time"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure MarksService implements the interface.
var _ driving.MarksService = (*MarksService)(nil)

// MarksService validates and applies single mark updates.
type MarksService struct {
	records driving.RecordService
	now     func() time.Time
}

// NewMarksService creates a new marks service that persists through records.
func NewMarksService(records driving.RecordService) *MarksService {
	return &MarksService{
		records: records,
		now:     time.Now,
	}
}

// Update sets one student's mark for subject.
// Validation runs before lookup, and nothing changes unless the save succeeds.
func (s *MarksService) Update(
	ctx context.Context, sess *domain.Session, subject, rollNumber, rawMark string,
) (*domain.Student, error) {
	if !sess.LoggedIn() {
		return nil, domain.ErrAuthRequired
	}
	if sess.Teacher.Subject != subject {
		return nil, fmt.Errorf("%w: %s", domain.ErrForbiddenSubject, subject)
	}

	value, err := domain.ParseMark(rawMark)
	if err != nil {
		logger.Debug("Rejected mark %q: %v", rawMark, err)
		return nil, err
	}

	student := sess.Document.FindStudent(rollNumber)
	if student == nil {
		return nil, fmt.Errorf("student %q: %w", rollNumber, domain.ErrNotFound)
	}

	prev := student.Clone()
	prevDocUpdated := sess.Document.LastUpdated

	stamp := domain.Timestamp(s.now())
	student.Marks.Set(subject, value)
	student.LastUpdated = stamp
	sess.Document.LastUpdated = stamp

	if err := s.records.Save(ctx, sess); err != nil {
		*student = prev
		sess.Document.LastUpdated = prevDocUpdated
		return nil, err
	}

	logger.Info("Session %s: %s set %s=%d for %s", sess.ID, sess.Teacher.Username, subject, value, rollNumber)
	updated := student.Clone()
	return &updated, nil
}
