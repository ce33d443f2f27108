package driven

import (
	"context"
	"io"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// ReportExporter renders a leaderboard to an external format.
type ReportExporter interface {
	// Export writes standings to w with one column per subject.
	Export(ctx context.Context, standings []domain.Standing, subjects []string, w io.Writer) error

	// Extension returns the file extension produced, including the dot.
	Extension() string
}
