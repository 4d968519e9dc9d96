package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/reglet-dev/roster/internal/infrastructure/container"
	"github.com/reglet-dev/roster/internal/infrastructure/system"
	"github.com/spf13/cobra"
)

// runReport loads the roster and prints the report. Missing or unreadable
// input is not an error: it is logged and the report is simply empty.
func runReport(cmd *cobra.Command, opts *rootOptions) error {
	cfg, err := opts.resolveConfig()
	if err != nil {
		return err
	}

	c, err := container.New(container.Options{
		Config: cfg,
		Logger: slog.Default(),
	})
	if err != nil {
		return err
	}

	// Determine output writer
	writer := cmd.OutOrStdout()
	if opts.outFile != "" {
		//nolint:gosec // G304: User-controlled output file path is intentional
		file, err := os.Create(opts.outFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer func() {
			_ = file.Close() // Best-effort cleanup
		}()
		writer = file
		slog.Debug("writing output", "file", opts.outFile, "format", cfg.Output.Format)
	}

	formatter, err := c.Formatter(writer)
	if err != nil {
		return err
	}

	progress := io.Discard
	if cfg.Output.Format == "table" {
		progress = writer
	}

	//nolint:errcheck // Best-effort terminal output
	fmt.Fprintln(progress, "Cargando datos de estudiantes...")

	resp := c.GradeReportUseCase().Execute(cmd.Context(), c.GradeReportRequest())

	//nolint:errcheck // Best-effort terminal output
	fmt.Fprintf(progress, "Notas estudiantes cargadas: %d\n", resp.Report.Count())

	if err := formatter.Format(resp.Report); err != nil {
		return fmt.Errorf("failed to format output: %w", err)
	}

	return nil
}

// resolveConfig layers the config file, ROSTER_* environment variables and
// flags, in increasing precedence, over the defaults.
func (o *rootOptions) resolveConfig() (*system.Config, error) {
	path := o.configPath()

	cfg, err := system.NewConfigLoader().Load(path)
	if err != nil {
		return nil, err
	}
	slog.Debug("configuration loaded", "file", path)

	v := o.v
	if v.IsSet("input.path") {
		cfg.Input.Path = v.GetString("input.path")
	}
	if v.IsSet("input.sheet") {
		cfg.Input.Sheet = v.GetString("input.sheet")
	}
	if v.IsSet("input.name_column") {
		cfg.Input.NameColumn = v.GetString("input.name_column")
	}
	if v.IsSet("input.grade_column") {
		cfg.Input.GradeColumn = v.GetString("input.grade_column")
	}
	if v.IsSet("grades.min") {
		cfg.Grades.Min = v.GetFloat64("grades.min")
	}
	if v.IsSet("grades.max") {
		cfg.Grades.Max = v.GetFloat64("grades.max")
	}
	if v.IsSet("output.format") {
		cfg.Output.Format = v.GetString("output.format")
	}
	if v.IsSet("output.highlight") {
		cfg.Output.Highlight = v.GetString("output.highlight")
	}
	if o.noColor || o.outFile != "" {
		cfg.Output.Color = false
	}

	return cfg, nil
}
