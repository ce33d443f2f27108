// Package leaderboard provides the ranked totals view for the TUI.
package leaderboard

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/views/table"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

const (
	rankWidth  = 4
	rollWidth  = 8
	nameWidth  = 24
	totalWidth = 6

	// chromeLines is the number of lines drawn around the rows.
	chromeLines = 8
)

// View renders students ranked by total.
type View struct {
	styles      *styles.Styles
	keymap      *keymap.KeyMap
	standings   []domain.Standing
	lastUpdated string
	err         error
	selected    int
	offset      int
	width       int
	height      int
}

// NewView creates a new leaderboard view.
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

// SetData replaces the rows; the cursor is kept in range.
func (v *View) SetData(lastUpdated string, standings []domain.Standing) {
	v.lastUpdated = lastUpdated
	v.standings = standings
	v.err = nil
	if v.selected >= len(standings) {
		v.selected = max(len(standings)-1, 0)
	}
}

// SetError shows err instead of the table.
func (v *View) SetError(err error) {
	v.err = err
}

// Update handles messages for the leaderboard view.
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
			if v.selected < len(v.standings)-1 {
				v.selected++
			}
		case keymap.Matches(keyStr, v.keymap.Switch):
			return v, changeView(messages.ViewMarks)
		case keymap.Matches(keyStr, v.keymap.Back):
			return v, changeView(messages.ViewMenu)
		case keymap.Matches(keyStr, v.keymap.Reload):
			return v, func() tea.Msg { return messages.ReloadRequested{} }
		case keymap.Matches(keyStr, v.keymap.Quit):
			return v, tea.Quit
		}
	}
	return v, nil
}

func changeView(view messages.ViewType) tea.Cmd {
	return func() tea.Msg { return messages.ViewChanged{View: view} }
}

// View renders the leaderboard.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render("Leaderboard"))
	b.WriteString("\n")
	updated := v.lastUpdated
	if updated == "" {
		updated = "Unknown"
	}
	b.WriteString(v.styles.Muted.Render("Last Updated: " + updated))
	b.WriteString("\n\n")

	switch {
	case v.err != nil:
		b.WriteString(v.styles.Error.Render(fmt.Sprintf("Error: %v", v.err)))
		b.WriteString("\n")
	case len(v.standings) == 0:
		b.WriteString(v.styles.Muted.Render("No student records available."))
		b.WriteString("\n")
	default:
		v.renderTable(&b)
	}

	b.WriteString("\n")
	b.WriteString(v.styles.Help.Render("[j/k] Navigate  [tab] All marks  [r] Reload  [esc] Menu  [q] Quit"))
	return b.String()
}

func (v *View) renderTable(b *strings.Builder) {
	header := table.Cell("Rank", rankWidth) + " " +
		table.Cell("Roll", rollWidth) + " " +
		table.Cell("Name", nameWidth) + " " +
		table.RightCell("Total", totalWidth)
	b.WriteString(v.styles.TableHeader.Render(header))
	b.WriteString("\n")

	var start, end int
	v.offset, start, end = table.Scroll(v.selected, v.offset, len(v.standings), v.height-chromeLines)
	for i := start; i < end; i++ {
		st := v.standings[i]
		rank := v.styles.Rank(st.Rank).Render(table.Cell(fmt.Sprintf("%d", st.Rank), rankWidth))
		rest := table.Cell(st.Student.RollNumber, rollWidth) + " " +
			table.Cell(st.Student.Name, nameWidth) + " " +
			table.RightCell(fmt.Sprintf("%d", st.Total), totalWidth)

		if i == v.selected {
			b.WriteString("> " + rank + " " + v.styles.Selected.Render(rest))
		} else {
			b.WriteString("  " + rank + " " + v.styles.Normal.Render(rest))
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

// Standings returns the rows currently shown.
func (v *View) Standings() []domain.Standing {
	return v.standings
}

// Err returns the error being shown, if any.
func (v *View) Err() error {
	return v.err
}
