// Package container provides dependency injection for the application.
package container

import (
	"io"
	"log/slog"

	"github.com/reglet-dev/roster/internal/application/dto"
	"github.com/reglet-dev/roster/internal/application/ports"
	"github.com/reglet-dev/roster/internal/application/services"
	domainservices "github.com/reglet-dev/roster/internal/domain/services"
	"github.com/reglet-dev/roster/internal/infrastructure/logging"
	"github.com/reglet-dev/roster/internal/infrastructure/output"
	"github.com/reglet-dev/roster/internal/infrastructure/source"
	"github.com/reglet-dev/roster/internal/infrastructure/system"
)

// Container holds all application dependencies.
type Container struct {
	gradeReportUseCase *services.GradeReportUseCase
	formatters         *output.FormatterFactory
	config             *system.Config
	logger             *slog.Logger
}

// Options configure the container.
type Options struct {
	Logger *slog.Logger

	// Config is the fully resolved configuration (file, env and flags applied).
	// Nil means system.DefaultConfig().
	Config *system.Config
}

// New validates the configuration and wires the application.
func New(opts Options) (*Container, error) {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Config == nil {
		opts.Config = system.DefaultConfig()
	}

	if err := opts.Config.Validate(); err != nil {
		return nil, err
	}

	// Infrastructure adapters
	readers := source.NewReaderFactory(opts.Config.Input.Sheet)
	sink := logging.NewSlogSink(opts.Logger)

	// Wire up use case
	loader := services.NewRosterLoader(readers, opts.Logger)
	gradeReportUseCase := services.NewGradeReportUseCase(
		loader,
		domainservices.NewGradeAggregator(),
		sink,
		opts.Logger,
	)

	return &Container{
		gradeReportUseCase: gradeReportUseCase,
		formatters:         output.NewFormatterFactory(),
		config:             opts.Config,
		logger:             opts.Logger,
	}, nil
}

// GradeReportUseCase returns the grade report use case.
func (c *Container) GradeReportUseCase() *services.GradeReportUseCase {
	return c.gradeReportUseCase
}

// GradeReportRequest builds a request from the configuration.
func (c *Container) GradeReportRequest() dto.GradeReportRequest {
	// Range was checked by Validate in New.
	rng, _ := c.config.GradeRange()

	return dto.GradeReportRequest{
		InputPath: c.config.Input.Path,
		Columns:   c.config.Columns(),
		Range:     rng,
	}
}

// Formatter returns the configured report formatter writing to w.
func (c *Container) Formatter(w io.Writer) (ports.ReportFormatter, error) {
	return c.formatters.Create(c.config.Output.Format, w, ports.FormatterOptions{
		Highlight: c.config.Output.Highlight,
		Color:     c.config.Output.Color,
		Indent:    true,
	})
}

// Config returns the resolved configuration.
func (c *Container) Config() *system.Config {
	return c.config
}

// Logger returns the configured logger.
func (c *Container) Logger() *slog.Logger {
	return c.logger
}
