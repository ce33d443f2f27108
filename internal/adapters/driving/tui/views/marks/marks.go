// Package marks provides the per-subject marks grid view for the TUI.
package marks

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/views/table"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/format"
)

const (
	rollWidth    = 8
	nameWidth    = 20
	minMarkWidth = 5
	totalWidth   = 6
	chromeLines  = 7
)

// View renders every subject for every student in document order.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	subjects []string
	students []domain.Student
	err      error
	selected int
	offset   int
	width    int
	height   int
}

// NewView creates a new marks view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &View{
		styles: s,
		keymap: km,
		width:  80,
		height: 24,
	}
}

// SetData replaces the grid contents.
func (v *View) SetData(subjects []string, students []domain.Student) {
	v.subjects = subjects
	v.students = students
	v.err = nil
	if v.selected >= len(students) {
		v.selected = max(len(students)-1, 0)
	}
}

// SetError shows err instead of the grid.
func (v *View) SetError(err error) {
	v.err = err
}

// Update handles messages for the marks view.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		v.SetDimensions(msg.Width, msg.Height)
		return v, nil

	case tea.KeyMsg:
		keyStr := msg.String()
		switch {
		case keymap.Matches(keyStr, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case keymap.Matches(keyStr, v.keymap.Down):
			if v.selected < len(v.students)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Switch):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewLeaderboard} }
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, func() tea.Msg { return messages.ViewChanged{View: messages.ViewMenu} }
		case keymap.Matches(keyStr, v.keymap.Reload):
			return v, func() tea.Msg { return messages.ReloadRequested{} }
		case keymap.Matches(keyStr, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

// View renders the grid.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("All Marks"))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case len(v.students) == 0:
		b.WriteString(v.styles.Muted.Render("No student records available."))
		b.WriteString("\n")
	default:
		v.renderGrid(&b)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [tab] Leaderboard  [r] Reload  [esc] Menu  [q] Quit"))
	return b.String()
}

func (v *View) renderGrid(b *strings.Builder) {
	headers := make([]string, len(v.subjects))
	widths := make([]int, len(v.subjects))
	for i, subject := range v.subjects {
		headers[i] = format.Subject(subject)
		widths[i] = max(lipgloss.Width(headers[i]), minMarkWidth)
	}

	header := table.Cell("Roll", rollWidth) + " " + table.Cell("Name", nameWidth)
	for i := range headers {
		header += " " + table.RightCell(headers[i], widths[i])
	}
	header += " " + table.RightCell("Total", totalWidth)
	b.WriteString(v.styles.TableHeader.Render(header))
	b.WriteString("\n")

	var start, end int
	v.offset, start, end = table.Scroll(v.selected, v.offset, len(v.students), v.height-chromeLines)
	for i := start; i < end; i++ {
		s := &v.students[i]
		row := table.Cell(s.RollNumber, rollWidth) + " " + table.Cell(s.Name, nameWidth)
		for j, subject := range v.subjects {
			cell := format.NotAvailable
			if mark, ok := s.Marks.Get(subject); ok {
				cell = fmt.Sprintf("%d", mark)
			}
			row += " " + table.RightCell(cell, widths[j])
		}
		row += " " + v.styles.Total.Render(table.RightCell(fmt.Sprintf("%d", s.Total()), totalWidth))

		if i == v.selected {
			b.WriteString("> " + v.styles.Selected.Render(row))
		} else {
			b.WriteString("  " + v.styles.Normal.Render(row))
		}
		b.WriteString("\n")
	}
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// Selected returns the cursor position.
func (v *View) Selected() int {
	return v.selected
}

// Subjects returns the subject columns currently shown.
func (v *View) Subjects() []string {
	return v.subjects
}

// Err returns the error being shown, if any.
func (v *View) Err() error {
	return v.err
}
