// Package container provides dependency injection for the fintrack application.
// It centralizes the creation and wiring of all application dependencies,
// making them explicit and testable.
package container

import (
	"fmt"

	"fjacquet/fintrack/internal/config"
	"fjacquet/fintrack/internal/logging"
	"fjacquet/fintrack/internal/report"
	"fjacquet/fintrack/internal/store"
	"fjacquet/fintrack/internal/tracker"

	"github.com/shopspring/decimal"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation: all fields are private and can only
// be accessed through getter methods.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     *store.UserStore
	tracker   *tracker.Tracker
	generator *report.ReportGenerator
}

// NewContainer creates and wires all application dependencies, loading the data
// file into a tracker.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	return NewContainerWithLogger(cfg, logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format))
}

// NewContainerWithLogger is NewContainer with an explicit logger.
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	userStore := store.NewUserStore(cfg.Data.File, cfg.Data.BackupEnabled, logger)

	tr, err := tracker.Open(userStore, tracker.Options{
		WarningThreshold: decimal.NewFromFloat(cfg.Budget.WarningThreshold),
		HashPasswords:    cfg.Auth.HashPasswords,
	}, logger)
	if err != nil {
		return nil, err
	}

	generator := report.NewReportGenerator(logger, cfg.Report.Currency)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldFile, Value: cfg.Data.File},
		logging.Field{Key: logging.FieldCount, Value: len(tr.Profiles())})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     userStore,
		tracker:   tr,
		generator: generator,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the store backing the tracker.
func (c *Container) GetStore() *store.UserStore {
	return c.store
}

// GetTracker returns the tracker loaded from the data file.
func (c *Container) GetTracker() *tracker.Tracker {
	return c.tracker
}

// GetReportGenerator returns the report generator configured with the report currency.
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.generator
}

// GetDelimiter returns the CSV delimiter used for import and export.
func (c *Container) GetDelimiter() rune {
	return c.config.Delimiter()
}

// GetReportFormat returns the default report format.
func (c *Container) GetReportFormat() string {
	return c.config.Report.Format
}
