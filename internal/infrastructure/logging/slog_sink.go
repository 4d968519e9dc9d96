// Package logging delivers roster diagnostics through log/slog.
package logging

import (
	"context"
	"log/slog"

	"github.com/reglet-dev/roster/internal/domain/diagnostics"
)

// SlogSink implements ports.DiagnosticSink on top of a slog.Logger.
// Out-of-range grades are warnings; source failures are errors.
type SlogSink struct {
	logger *slog.Logger
}

// NewSlogSink creates a sink writing to logger (slog.Default() if nil).
func NewSlogSink(logger *slog.Logger) *SlogSink {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogSink{logger: logger}
}

// Report logs one diagnostic.
func (s *SlogSink) Report(d diagnostics.Diagnostic) {
	level := slog.LevelError
	if d.Kind == diagnostics.KindGradeOutOfRange {
		level = slog.LevelWarn
	}

	attrs := []slog.Attr{slog.String("kind", string(d.Kind))}
	if d.Source != "" {
		attrs = append(attrs, slog.String("path", d.Source))
	}
	if d.Student != "" {
		attrs = append(attrs, slog.String("student", d.Student))
	}
	if d.Value != "" {
		attrs = append(attrs, slog.String("value", d.Value))
	}
	if d.Err != nil {
		attrs = append(attrs, slog.String("error", d.Err.Error()))
	}

	s.logger.LogAttrs(context.Background(), level, d.Message, attrs...)
}
