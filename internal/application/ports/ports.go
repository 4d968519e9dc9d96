// Package ports defines interfaces for infrastructure dependencies.
// These are the "ports" in hexagonal architecture - abstractions that
// the application layer depends on but doesn't implement.
package ports

import (
	"context"

	"github.com/reglet-dev/roster/internal/domain/diagnostics"
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/report"
)

// RowReader reads every data row of a tabular file.
// Implementations open, fully consume and close the file before returning.
// Failures are returned as *apperrors.SourceError.
type RowReader interface {
	ReadRows(ctx context.Context, path string) ([]entities.Row, error)
}

// RowReaderFactory picks a reader for an input path.
type RowReaderFactory interface {
	ForPath(path string) RowReader
}

// DiagnosticSink receives side-channel diagnostics.
type DiagnosticSink interface {
	Report(d diagnostics.Diagnostic)
}

// ReportFormatter renders a grade report.
type ReportFormatter interface {
	Format(r *report.GradeReport) error
}
