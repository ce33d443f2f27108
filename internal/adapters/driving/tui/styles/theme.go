// Package styles provides colour themes and styling for the TUI.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme defines the colour palette for the TUI.
type Theme struct {
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color

	// Gold, Silver and Bronze colour the top three ranks.
	Gold   lipgloss.Color
	Silver lipgloss.Color
	Bronze lipgloss.Color
}

// DefaultTheme returns the default colour theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2E7D32"), // Chalkboard green
		Secondary:  lipgloss.Color("#0288D1"), // Blue
		Foreground: lipgloss.Color("#ECEFF1"), // Chalk white
		Muted:      lipgloss.Color("#78909C"), // Slate
		Success:    lipgloss.Color("#81C784"), // Light green
		Warning:    lipgloss.Color("#FFB74D"), // Orange
		Error:      lipgloss.Color("#E57373"), // Red
		Border:     lipgloss.Color("#455A64"), // Dark slate
		Gold:       lipgloss.Color("#FFD54F"),
		Silver:     lipgloss.Color("#B0BEC5"),
		Bronze:     lipgloss.Color("#BC8F6F"),
	}
}

// Styles contains pre-configured lipgloss styles.
type Styles struct {
	theme *Theme

	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Normal   lipgloss.Style
	Muted    lipgloss.Style

	// Selected highlights the cursor row.
	Selected lipgloss.Style

	Error   lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style

	// TableHeader styles the column header row of a table.
	TableHeader lipgloss.Style

	// Total styles the total column.
	Total lipgloss.Style

	StatusBar lipgloss.Style
	Help      lipgloss.Style
	Border    lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	return &Styles{
		theme: theme,

		Title: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Primary),

		Subtitle: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary),

		Normal: lipgloss.NewStyle().
			Foreground(theme.Foreground),

		Muted: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Selected: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground).
			Background(theme.Primary),

		Error: lipgloss.NewStyle().
			Foreground(theme.Error),

		Success: lipgloss.NewStyle().
			Foreground(theme.Success),

		Warning: lipgloss.NewStyle().
			Foreground(theme.Warning),

		TableHeader: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Secondary).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(theme.Border),

		Total: lipgloss.NewStyle().
			Bold(true).
			Foreground(theme.Foreground),

		StatusBar: lipgloss.NewStyle().
			Foreground(theme.Muted).
			Background(lipgloss.Color("#263238")).
			Padding(0, 1),

		Help: lipgloss.NewStyle().
			Foreground(theme.Muted),

		Border: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(theme.Border),
	}
}

// DefaultStyles returns styles with the default theme.
func DefaultStyles() *Styles {
	return NewStyles(DefaultTheme())
}

// Theme returns the theme used by these styles.
func (s *Styles) Theme() *Theme {
	return s.theme
}

// Rank returns the style for a leaderboard position; podium places are coloured.
func (s *Styles) Rank(rank int) lipgloss.Style {
	base := lipgloss.NewStyle().Bold(true)
	switch rank {
	case 1:
		return base.Foreground(s.theme.Gold)
	case 2:
		return base.Foreground(s.theme.Silver)
	case 3:
		return base.Foreground(s.theme.Bronze)
	default:
		return s.Normal
	}
}
