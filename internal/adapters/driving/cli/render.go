package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/format"
)

const (
	msgNoRecords   = "No student records available."
	msgUnknownTime = "Unknown"
)

var (
	heavyRule = strings.Repeat("=", 30)
	lightRule = strings.Repeat("-", 30)
)

func markOrNA(mark int, present bool) string {
	if !present {
		return format.NotAvailable
	}
	return fmt.Sprintf("%d", mark)
}

// renderLeaderboard prints the public ranking, highest total first.
func renderLeaderboard(w io.Writer, lastUpdated string, standings []domain.Standing) {
	if lastUpdated == "" {
		lastUpdated = msgUnknownTime
	}
	fmt.Fprintln(w, "\n=== PUBLIC MARKS VIEW ===")
	fmt.Fprintf(w, "Last Updated: %s\n", lastUpdated)
	fmt.Fprintln(w, heavyRule)

	for _, st := range standings {
		fmt.Fprintf(w, "\nRoll: %s\n", st.Student.RollNumber)
		fmt.Fprintf(w, "Name: %s\n", st.Student.Name)
		for _, mark := range st.Student.Marks {
			fmt.Fprintf(w, "%s: %d\n", format.Subject(mark.Subject), mark.Value)
		}
		fmt.Fprintf(w, "TOTAL: %d\n", st.Total)
		fmt.Fprintln(w, lightRule)
	}
}

// renderSubjectMarks prints one subject for every student.
func renderSubjectMarks(w io.Writer, rows []domain.MarkRow) {
	fmt.Fprintln(w, "\nStudent Marks:")
	for _, row := range rows {
		fmt.Fprintf(w, "\nRoll: %s, Name: %s\n", row.Student.RollNumber, row.Student.Name)
		fmt.Fprintf(w, "%s: %s\n", row.Subject, markOrNA(row.Mark, row.Present))
	}
}

// renderAllMarks prints every subject and the total for every student.
func renderAllMarks(w io.Writer, students []domain.Student) {
	fmt.Fprintln(w, "\nStudent Marks:")
	for i := range students {
		s := &students[i]
		fmt.Fprintf(w, "\nRoll: %s, Name: %s\n", s.RollNumber, s.Name)
		for _, mark := range s.Marks {
			fmt.Fprintf(w, "%s: %d\n", mark.Subject, mark.Value)
		}
		fmt.Fprintf(w, "Total: %d\n", s.Total())
	}
}

func renderUpdateCandidates(w io.Writer, subject string, rows []domain.MarkRow) {
	fmt.Fprintln(w, "\nCurrent Students:")
	for _, row := range rows {
		fmt.Fprintf(w, "\nRoll: %s, Name: %s\n", row.Student.RollNumber, row.Student.Name)
		fmt.Fprintf(w, "Current %s marks: %s\n", subject, markOrNA(row.Mark, row.Present))
	}
}

func renderUpdatedRecord(w io.Writer, subject string, student *domain.Student) {
	mark, ok := student.Marks.Get(subject)
	fmt.Fprintln(w, "\nUpdated Record:")
	fmt.Fprintf(w, "Roll: %s, Name: %s\n", student.RollNumber, student.Name)
	fmt.Fprintf(w, "%s: %s\n", subject, markOrNA(mark, ok))
}
