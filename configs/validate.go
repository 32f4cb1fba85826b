package config

import (
	"errors"
	"fmt"
	"slices"
)

// validation errors.
var (
	errInvalidLogLevel     = errors.New("invalid Log.Level value")
	errInvalidLogFormat    = errors.New("invalid Log.Format value")
	errInvalidReportFormat = errors.New("invalid Report.Format value")
	errInvalidReportSort   = errors.New("invalid Report.Sort value")
	errInvalidReportColor  = errors.New("invalid Report.Color value")
	errInvalidScanWorkers  = errors.New("Scan.Workers must be positive")
	errEmptyLocaleDir      = errors.New("Scan.LocaleDir cannot be empty")
)

// Recognized Report.Format values.
const (
	FormatTable = "table"
	FormatCSV   = "csv"
	FormatJSON  = "json"
)

var (
	validLogLevels     = []string{"debug", "info", "warn", "error"}
	validLogFormats    = []string{"console", "json"}
	validReportFormats = []string{FormatTable, FormatCSV, FormatJSON}
	validReportSorts   = []string{"coverage", "name"}
	validReportColors  = []string{"auto", "always", "never"}
)

// validate checks the configuration for values the rest of the application
// would choke on.
func (cfg *AppConfig) validate() error {
	if !slices.Contains(validLogLevels, cfg.Log.Level) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidLogLevel, cfg.Log.Level, validLogLevels)
	}

	if !slices.Contains(validLogFormats, cfg.Log.Format) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidLogFormat, cfg.Log.Format, validLogFormats)
	}

	if !slices.Contains(validReportFormats, cfg.Report.Format) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidReportFormat, cfg.Report.Format, validReportFormats)
	}

	if !slices.Contains(validReportSorts, cfg.Report.Sort) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidReportSort, cfg.Report.Sort, validReportSorts)
	}

	if !slices.Contains(validReportColors, cfg.Report.Color) {
		return fmt.Errorf("%w: %q (want one of %v)", errInvalidReportColor, cfg.Report.Color, validReportColors)
	}

	if cfg.Scan.Workers <= 0 {
		return fmt.Errorf("%w: %d", errInvalidScanWorkers, cfg.Scan.Workers)
	}

	if cfg.Scan.LocaleDir == "" {
		return errEmptyLocaleDir
	}

	return nil
}
