// Package cli provides the cobra command tree for the marks binary.
package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

var (
	verbose bool
	dbPath  string
)

// Services holds the driving ports and the driven adapters the commands use.
type Services struct {
	Records  driving.RecordService
	Auth     driving.AuthService
	Marks    driving.MarksService
	Reports  driving.ReportService
	Settings driving.SettingsService
	Exporter driven.ReportExporter
	Watcher  driven.FileWatcher
}

// Options carries flag values needed to build Services.
type Options struct {
	// DatabasePath overrides the configured document path when non-empty.
	DatabasePath string
}

// ServicesFactory builds Services once flags have been parsed.
type ServicesFactory func(opts Options) (*Services, error)

var (
	active          *Services
	servicesFactory ServicesFactory
	settingsService driving.SettingsService
)

var rootCmd = &cobra.Command{
	Use:   "marks",
	Short: "Student marks record keeping",
	Long: `Marks keeps student marks in a single JSON document.

Run without a subcommand to start the interactive menu: teachers log in
to update marks for their own subject, and anyone can view the public
leaderboard.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runMenu,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print diagnostic logs to stderr")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", "", "path to the JSON database (overrides settings)")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

// SetServicesFactory registers how Services are built after flag parsing.
func SetServicesFactory(factory ServicesFactory) {
	servicesFactory = factory
}

// SetServices installs ready-made Services, bypassing the factory.
func SetServices(svc *Services) {
	active = svc
	if svc != nil {
		settingsService = svc.Settings
	}
}

// SetSettingsService sets the settings service for the settings commands.
func SetSettingsService(svc driving.SettingsService) {
	settingsService = svc
}

func setup(_ *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	return nil
}

// requireServices returns the installed Services, building them through the
// factory on first use. Commands that never touch the document skip this.
func requireServices() (*Services, error) {
	if active != nil {
		return active, nil
	}
	if servicesFactory == nil {
		return nil, errors.New("services not configured")
	}

	logger.Debug("Building services (db override: %q)", dbPath)
	svc, err := servicesFactory(Options{DatabasePath: dbPath})
	if err != nil {
		return nil, err
	}
	SetServices(svc)
	return svc, nil
}
