// Package tui provides an interactive terminal user interface for marks.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/custodia-labs/marks-cli/internal/core/ports/driven"
	"github.com/custodia-labs/marks-cli/internal/core/ports/driving"
)

// Ports aggregates the services the TUI needs.
type Ports struct {
	// Records loads the document.
	Records driving.RecordService

	// Reports builds the leaderboard and the marks grid.
	Reports driving.ReportService

	// Watcher signals changes to the document file. Optional.
	Watcher driven.FileWatcher
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(records driving.RecordService, reports driving.ReportService, watcher driven.FileWatcher) *Ports {
	return &Ports{
		Records: records,
		Reports: reports,
		Watcher: watcher,
	}
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p == nil {
		return ErrInvalidPorts
	}
	if p.Records == nil {
		return ErrMissingRecordService
	}
	if p.Reports == nil {
		return ErrMissingReportService
	}
	return nil
}
