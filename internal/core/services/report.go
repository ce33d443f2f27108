package services

import (
	"context"
	"fmt"
	"sort"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// Ensure ReportService implements the interface.
var _ driving.ReportService = (*ReportService)(nil)

// ReportService builds read-only views of the session's document.
type ReportService struct{}

// NewReportService creates a new report service.
func NewReportService() *ReportService {
	return &ReportService{}
}

// Leaderboard returns students ordered by total descending, ties in document order.
func (s *ReportService) Leaderboard(_ context.Context, sess *domain.Session) ([]domain.Standing, error) {
	if sess.Document.IsEmpty() {
		return nil, domain.ErrNoRecords
	}

	standings := make([]domain.Standing, 0, len(sess.Document.Students))
	for i := range sess.Document.Students {
		student := sess.Document.Students[i].Clone()
		standings = append(standings, domain.Standing{
			Student: student,
			Total:   student.Total(),
		})
	}

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].Total > standings[j].Total
	})
	for i := range standings {
		standings[i].Rank = i + 1
	}

	logger.Debug("Leaderboard built for %d students", len(standings))
	return standings, nil
}

// View returns one row per student for subject, in document order.
func (s *ReportService) View(_ context.Context, sess *domain.Session, subject string) ([]domain.MarkRow, error) {
	if subject == "" {
		return nil, fmt.Errorf("view marks: empty subject: %w", domain.ErrInvalidInput)
	}
	if sess.Document.IsEmpty() {
		return nil, domain.ErrNoRecords
	}

	rows := make([]domain.MarkRow, 0, len(sess.Document.Students))
	for i := range sess.Document.Students {
		student := sess.Document.Students[i].Clone()
		mark, ok := student.Marks.Get(subject)
		rows = append(rows, domain.MarkRow{
			Student: student,
			Subject: subject,
			Mark:    mark,
			Present: ok,
		})
	}
	return rows, nil
}

// Students returns copies of all students in document order.
func (s *ReportService) Students(_ context.Context, sess *domain.Session) ([]domain.Student, error) {
	if sess.Document.IsEmpty() {
		return nil, domain.ErrNoRecords
	}

	students := make([]domain.Student, 0, len(sess.Document.Students))
	for i := range sess.Document.Students {
		students = append(students, sess.Document.Students[i].Clone())
	}
	return students, nil
}

// Subjects returns every subject present, in first-seen order.
func (s *ReportService) Subjects(_ context.Context, sess *domain.Session) []string {
	if sess.Document.IsEmpty() {
		return nil
	}
	return sess.Document.Subjects()
}
