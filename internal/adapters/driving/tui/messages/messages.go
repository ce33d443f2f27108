// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/custodia-labs/marks-cli/internal/core/domain"
)

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewMenu is the main navigation menu.
	ViewMenu ViewType = iota
	// ViewLeaderboard ranks students by total.
	ViewLeaderboard
	// ViewMarks shows every subject for every student.
	ViewMarks
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewMenu:
		return "menu"
	case ViewLeaderboard:
		return "leaderboard"
	case ViewMarks:
		return "marks"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ReloadRequested asks the app to read the document again.
type ReloadRequested struct{}

// DocumentLoaded carries a freshly opened session back to the model.
type DocumentLoaded struct {
	Session *domain.Session
	Err     error
}

// FileChanged is sent when the document file changed on disk.
type FileChanged struct{}

// WatchStopped is sent when the file watcher channel closes.
type WatchStopped struct{}

// ErrorOccurred is sent when any operation fails.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
