package tui

import "errors"

// ErrMissingRecordService is returned when the record service is not provided.
var ErrMissingRecordService = errors.New("tui: record service is required")

// ErrMissingReportService is returned when the report service is not provided.
var ErrMissingReportService = errors.New("tui: report service is required")

// ErrInvalidPorts is returned when no ports were given at all.
var ErrInvalidPorts = errors.New("tui: invalid ports configuration")
