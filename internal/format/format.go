// Package format holds display helpers shared by the CLI, TUI, and exporters.
package format

import (
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// NotAvailable is shown in place of a missing mark.
const NotAvailable = "N/A"

// Subject title-cases a subject name for display ("computer science" -> "Computer Science").
func Subject(name string) string {
	return cases.Title(language.English).String(name)
}
