package tui

import (
	"context"
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/components/status"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/keymap"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/messages"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/styles"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/views/leaderboard"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/views/marks"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui/views/menu"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	ports  *Ports
	ctx    context.Context
	styles *styles.Styles
	keymap *keymap.KeyMap

	menuView        *menu.View
	leaderboardView *leaderboard.View
	marksView       *marks.View
	statusBar       *status.Bar

	// session is the most recently loaded document.
	session *domain.Session

	// changes delivers file change notifications; nil when not watching.
	changes <-chan struct{}

	currentView messages.ViewType
	// helpReturn is the view the help screen goes back to.
	helpReturn messages.ViewType
	err        error

	width  int
	height int
	ready  bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	s := styles.DefaultStyles()
	km := keymap.DefaultKeyMap()

	return &App{
		ports:           ports,
		ctx:             context.Background(),
		styles:          s,
		keymap:          km,
		menuView:        menu.NewView(s),
		leaderboardView: leaderboard.NewView(s, km),
		marksView:       marks.NewView(s, km),
		statusBar:       status.NewBar(s, km),
		currentView:     messages.ViewMenu,
	}, nil
}

// WithContext sets the context for the app.
// Cancelling it stops the file watcher.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It loads the document and starts watching it for changes.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		tea.SetWindowTitle("marks - Public Marks View"),
		a.loadCmd(),
	}
	if watch := a.startWatch(); watch != nil {
		cmds = append(cmds, watch)
	}
	return tea.Batch(cmds...)
}

func (a *App) loadCmd() tea.Cmd {
	records := a.ports.Records
	ctx := a.ctx
	return func() tea.Msg {
		sess, err := records.Open(ctx)
		return messages.DocumentLoaded{Session: sess, Err: err}
	}
}

// reloadCmd re-reads the document into a copy of the current session.
// Unlike loadCmd it never creates the document, so a file that was removed
// shows up as an error instead of being recreated empty.
func (a *App) reloadCmd() tea.Cmd {
	if a.session == nil {
		return a.loadCmd()
	}
	records := a.ports.Records
	ctx := a.ctx
	next := *a.session
	return func() tea.Msg {
		if err := records.Reload(ctx, &next); err != nil {
			return messages.DocumentLoaded{Err: err}
		}
		return messages.DocumentLoaded{Session: &next}
	}
}

func (a *App) startWatch() tea.Cmd {
	if a.ports.Watcher == nil {
		return nil
	}
	ch, err := a.ports.Watcher.Watch(a.ctx, a.ports.Records.Location())
	if err != nil {
		logger.Warn("File watching disabled: %v", err)
		return nil
	}
	a.changes = ch
	return waitForChange(ch)
}

func waitForChange(ch <-chan struct{}) tea.Cmd {
	return func() tea.Msg {
		if _, ok := <-ch; !ok {
			return messages.WatchStopped{}
		}
		return messages.FileChanged{}
	}
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		if keymap.Matches(msg.String(), a.keymap.Help) {
			a.toggleHelp()
			return a, nil
		}

		switch a.currentView {
		case messages.ViewMenu:
			a.menuView, cmd = a.menuView.Update(msg)
		case messages.ViewLeaderboard:
			a.leaderboardView, cmd = a.leaderboardView.Update(msg)
		case messages.ViewMarks:
			a.marksView, cmd = a.marksView.Update(msg)
		case messages.ViewHelp:
			switch {
			case keymap.Matches(msg.String(), a.keymap.Back):
				a.currentView = a.helpReturn
			case keymap.Matches(msg.String(), a.keymap.Quit):
				return a, tea.Quit
			}
		}
		return a, cmd

	case messages.ViewChanged:
		if msg.View == messages.ViewHelp && a.currentView != messages.ViewHelp {
			a.helpReturn = a.currentView
		}
		a.currentView = msg.View
		return a, nil

	case messages.ReloadRequested:
		a.statusBar.SetLoading()
		return a, a.reloadCmd()

	case messages.FileChanged:
		logger.Debug("Document changed on disk, reloading")
		a.statusBar.SetLoading()
		if a.changes == nil {
			return a, a.reloadCmd()
		}
		return a, tea.Batch(a.reloadCmd(), waitForChange(a.changes))

	case messages.WatchStopped:
		a.changes = nil
		return a, nil

	case messages.DocumentLoaded:
		a.applyLoaded(msg)
		return a, nil

	case messages.ErrorOccurred:
		a.setError(msg.Err)
		return a, nil

	case messages.Quit:
		return a, tea.Quit
	}

	return a, nil
}

// toggleHelp opens the help screen from any view, or closes it.
func (a *App) toggleHelp() {
	if a.currentView == messages.ViewHelp {
		a.currentView = a.helpReturn
		return
	}
	a.helpReturn = a.currentView
	a.currentView = messages.ViewHelp
}

func (a *App) applyLoaded(msg messages.DocumentLoaded) {
	if msg.Err != nil {
		a.setError(msg.Err)
		return
	}

	a.err = nil
	a.session = msg.Session
	lastUpdated := msg.Session.Document.LastUpdated

	standings, err := a.ports.Reports.Leaderboard(a.ctx, msg.Session)
	if err != nil && !errors.Is(err, domain.ErrNoRecords) {
		a.setError(err)
		return
	}
	students, err := a.ports.Reports.Students(a.ctx, msg.Session)
	if err != nil && !errors.Is(err, domain.ErrNoRecords) {
		a.setError(err)
		return
	}

	a.leaderboardView.SetData(lastUpdated, standings)
	a.marksView.SetData(a.ports.Reports.Subjects(a.ctx, msg.Session), students)
	a.statusBar.SetLoaded(len(students), lastUpdated)
}

func (a *App) setError(err error) {
	a.err = err
	a.leaderboardView.SetError(err)
	a.marksView.SetError(err)
	a.statusBar.SetError(err)
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	var body string
	switch a.currentView {
	case messages.ViewLeaderboard:
		body = a.leaderboardView.View()
	case messages.ViewMarks:
		body = a.marksView.View()
	case messages.ViewHelp:
		body = a.viewHelp()
	default:
		body = a.menuView.View()
	}
	return body + "\n\n" + a.statusBar.View()
}

func (a *App) viewHelp() string {
	return `Help

Menu:
  j/k, ↑/↓    Navigate options
  enter       Select option
  ?           Toggle this help
  q           Quit

Leaderboard / All Marks:
  j/k, ↑/↓    Move cursor
  tab         Switch between leaderboard and all marks
  r           Reload the database
  esc         Back to menu

The views reload by themselves when the database file changes.

[esc/?] back`
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// Session returns the most recently loaded session, or nil.
func (a *App) Session() *domain.Session {
	return a.session
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.menuView.SetDimensions(width, height)
	a.leaderboardView.SetDimensions(width, height-2)
	a.marksView.SetDimensions(width, height-2)
	a.statusBar.SetWidth(width)
}
