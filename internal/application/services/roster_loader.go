// Package services contains application use cases.
package services

import (
	"context"
	"errors"
	"log/slog"

	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/application/ports"
	"github.com/reglet-dev/roster/internal/domain/diagnostics"
	"github.com/reglet-dev/roster/internal/domain/entities"
	domainservices "github.com/reglet-dev/roster/internal/domain/services"
)

// LoadResult is the outcome of loading a roster file.
type LoadResult struct {
	Records     []entities.Record
	Diagnostics []diagnostics.Diagnostic
	Skipped     int
}

// RosterLoader reads a roster file and keeps the rows that validate.
// It never fails: source errors become diagnostics and an empty result.
type RosterLoader struct {
	readers ports.RowReaderFactory
	logger  *slog.Logger
}

// NewRosterLoader creates a loader that picks readers from the factory.
func NewRosterLoader(readers ports.RowReaderFactory, logger *slog.Logger) *RosterLoader {
	if logger == nil {
		logger = slog.Default()
	}
	return &RosterLoader{readers: readers, logger: logger}
}

// Load reads path and validates every row in input order.
func (l *RosterLoader) Load(ctx context.Context, path string, validator *domainservices.RowValidator) LoadResult {
	rows, err := l.readers.ForPath(path).ReadRows(ctx, path)
	if err != nil {
		return LoadResult{Diagnostics: []diagnostics.Diagnostic{sourceDiagnostic(path, err)}}
	}

	var res LoadResult
	for _, row := range rows {
		out := validator.Validate(row)
		switch out.Outcome {
		case domainservices.RowAccepted:
			res.Records = append(res.Records, out.Record)
		case domainservices.RowOutOfRange:
			res.Diagnostics = append(res.Diagnostics, *out.Diagnostic)
		case domainservices.RowMalformed:
			res.Skipped++
		}
	}

	l.logger.Debug("roster rows processed",
		"path", path,
		"rows", len(rows),
		"accepted", len(res.Records),
		"out_of_range", len(res.Diagnostics),
		"skipped", res.Skipped)

	return res
}

func sourceDiagnostic(path string, err error) diagnostics.Diagnostic {
	cause := err
	var se *apperrors.SourceError
	if errors.As(err, &se) && se.Cause != nil {
		cause = se.Cause
	}
	if apperrors.IsNotFound(err) {
		return diagnostics.SourceNotFound(path, cause)
	}
	return diagnostics.SourceUnreadable(path, cause)
}
