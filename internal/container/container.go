// Package container provides dependency injection for the camt-report application.
// It centralizes the creation and wiring of the commands' dependencies from a Config.
package container

import (
	"fmt"

	"fjacquet/camt-report/internal/camtparser"
	"fjacquet/camt-report/internal/config"
	"fjacquet/camt-report/internal/dateutils"
	"fjacquet/camt-report/internal/logging"
	"fjacquet/camt-report/internal/report"
	"fjacquet/camt-report/internal/xmlutils"
)

// Container holds all application dependencies and provides methods to access them.
//
// Container is immutable after creation; fields are private and only reachable through
// getters.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	parser    *camtparser.Parser
	reporter  *report.ReportGenerator
	processor *camtparser.ConcurrentProcessor
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Create logger first as it's needed by other components
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	return NewContainerWithLogger(cfg, logger)
}

// NewContainerWithLogger wires the dependencies around an existing logger
func NewContainerWithLogger(cfg *config.Config, logger logging.Logger) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger cannot be nil")
	}

	xmlutils.SetLogger(logger)

	p := camtparser.NewParser(logger, camtparser.WithStrictNamespace(cfg.Parsers.CAMT.StrictNamespace))
	p.SetCSVFormat(cfg.Delimiter(), dateutils.LayoutFromPattern(cfg.CSV.DateFormat))

	reporter := report.NewReportGenerator(logger, dateutils.LayoutFromPattern(cfg.Report.DateFormat))
	processor := camtparser.NewConcurrentProcessor(logger, cfg.Batch.Workers)

	logger.Debug("Container initialized successfully",
		logging.Field{Key: logging.FieldParser, Value: camtparser.ParserName},
		logging.Field{Key: logging.FieldFormat, Value: cfg.Report.Format})

	return &Container{
		logger:    logger,
		config:    cfg,
		parser:    p,
		reporter:  reporter,
		processor: processor,
	}, nil
}

// GetParser returns the camt.053 parser configured from the container's config
func (c *Container) GetParser() *camtparser.Parser {
	return c.parser
}

// GetReportGenerator returns the statement report renderer
func (c *Container) GetReportGenerator() *report.ReportGenerator {
	return c.reporter
}

// GetProcessor returns the worker pool used for batch conversion
func (c *Container) GetProcessor() *camtparser.ConcurrentProcessor {
	return c.processor
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}
