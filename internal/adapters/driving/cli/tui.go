package cli

import (
	"context"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/adapters/driving/tui"
)

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for the public marks view.

The TUI shows the leaderboard and every student's marks, and reloads
whenever the database file changes on disk.

Controls:
  ↑/k, ↓/j - Move cursor
  Enter    - Select
  Tab      - Switch between leaderboard and all marks
  r        - Reload
  Esc      - Back to menu
  q        - Quit`,
	Args: cobra.NoArgs,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	svc, err := requireServices()
	if err != nil {
		return err
	}

	// Cancelling stops the file watcher when the program exits.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	app, err := tui.NewApp(tui.NewPorts(svc.Records, svc.Reports, svc.Watcher))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(ctx)

	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
