// Command marks is an interactive record keeper for student marks.
package main

import (
	"fmt"
	"os"

	"github.com/custodia-labs/marks-cli/internal/adapters/driven/auth"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/export/xlsx"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/storage/jsonfile"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/storage/memory"
	"github.com/custodia-labs/marks-cli/internal/adapters/driven/watch"
	"github.com/custodia-labs/marks-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/marks-cli/internal/core/domain"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
	"github.com/custodia-labs/marks-cli/internal/core/services"
	"github.com/custodia-labs/marks-cli/internal/logger"
)

// version is set at build time via -ldflags "-X main.version=...".
var version = "dev"

func main() {
	settingsService := services.NewSettingsService(openConfigStore(""))

	cli.SetVersion(version)
	cli.SetSettingsService(settingsService)
	cli.SetServicesFactory(func(opts cli.Options) (*cli.Services, error) {
		return buildServices(settingsService, opts)
	})

	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}

// openConfigStore returns the TOML config store, or an in-memory store holding
// defaults when the config cannot be read. The menu works either way.
func openConfigStore(dir string) driven.ConfigStore {
	store, err := file.NewConfigStore(dir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: settings unavailable, using defaults: %v\n", err)
		return memory.NewConfigStore()
	}
	return store
}

// buildServices wires the adapters selected by settings into the services.
func buildServices(settingsService driving.SettingsService, opts cli.Options) (*cli.Services, error) {
	settings, err := settingsService.Get()
	if err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}

	path := settings.Database.Path
	if opts.DatabasePath != "" {
		path = opts.DatabasePath
	}
	logger.Debug("Database: %s, auth scheme: %s", path, settings.Auth.Scheme)

	verifier, table, err := auth.NewVerifier(settings.Auth.Scheme, domain.DefaultCredentials())
	if err != nil {
		return nil, fmt.Errorf("configure auth: %w", err)
	}

	records := services.NewRecordService(jsonfile.NewStore(path))
	return &cli.Services{
		Records:  records,
		Auth:     services.NewAuthService(table, verifier),
		Marks:    services.NewMarksService(records),
		Reports:  services.NewReportService(),
		Settings: settingsService,
		Exporter: xlsx.NewExporter(),
		Watcher:  watch.NewWatcher(0),
	}, nil
}
