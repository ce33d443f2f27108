// Package status provides status bar components for the TUI.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/styles"
)

// State represents the current application state for display.
type State string

const (
	StateLoading State = "loading"
	StateReady   State = "ready"
	StateError   State = "error"
)

// Bar displays load status and keybinding hints.
type Bar struct {
	styles       *styles.Styles
	keymap       *keymap.KeyMap
	state        State
	message      string
	studentCount int
	lastUpdated  string
	width        int
}

// NewBar creates a new status bar component.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &Bar{
		styles: s,
		keymap: km,
		state:  StateLoading,
		width:  80,
	}
}

// View renders the status bar.
func (s *Bar) View() string {
	left := s.renderLeft()
	right := s.renderRight()

	inner := s.width - s.styles.StatusBar.GetHorizontalFrameSize()
	padding := inner - lipgloss.Width(left) - lipgloss.Width(right)
	if padding < 1 {
		padding = 1
	}

	return s.styles.StatusBar.Width(s.width).Render(
		left + strings.Repeat(" ", padding) + right,
	)
}

func (s *Bar) renderLeft() string {
	switch s.state {
	case StateLoading:
		return s.styles.Muted.Render("Loading...")
	case StateError:
		if s.message != "" {
			return s.styles.Error.Render(fmt.Sprintf("Error: %s", s.message))
		}
		return s.styles.Error.Render("Error")
	case StateReady:
		text := fmt.Sprintf("%d students", s.studentCount)
		if s.studentCount == 1 {
			text = "1 student"
		}
		if s.lastUpdated != "" {
			text += " | updated " + s.lastUpdated
		}
		return s.styles.Normal.Render(text)
	}
	return s.styles.Muted.Render("Ready")
}

func (s *Bar) renderRight() string {
	bindings := s.keymap.ShortHelp()
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return s.styles.Muted.Render(strings.Join(hints, " | "))
}

// SetLoaded switches to the ready state with document details.
func (s *Bar) SetLoaded(students int, lastUpdated string) {
	s.state = StateReady
	s.message = ""
	s.studentCount = students
	s.lastUpdated = lastUpdated
}

// SetLoading switches to the loading state.
func (s *Bar) SetLoading() {
	s.state = StateLoading
}

// SetError switches to the error state with err's message.
func (s *Bar) SetError(err error) {
	s.state = StateError
	s.message = ""
	if err != nil {
		s.message = err.Error()
	}
}

// State returns the current state.
func (s *Bar) State() State {
	return s.state
}

// Message returns the current error message.
func (s *Bar) Message() string {
	return s.message
}

// StudentCount returns the number of students last loaded.
func (s *Bar) StudentCount() int {
	return s.studentCount
}

// SetWidth sets the status bar width.
func (s *Bar) SetWidth(width int) {
	s.width = width
}

// Width returns the current width.
func (s *Bar) Width() int {
	return s.width
}
