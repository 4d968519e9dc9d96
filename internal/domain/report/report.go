// Package report holds the structured result of a roster run.
package report

import (
	"time"

	"github.com/reglet-dev/roster/internal/domain/diagnostics"
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/values"
)

// Summary is the aggregate over all valid records.
type Summary struct {
	Count   int
	Mean    float64
	HasMean bool
}

// GradeReport is the full outcome of loading, sorting and averaging a roster.
type GradeReport struct {
	GeneratedAt time.Time
	Source      string
	Records     []entities.Record
	Diagnostics []diagnostics.Diagnostic
	Summary     Summary
	RunID       values.RunID
}

// New creates an empty report for the given source.
func New(runID values.RunID, source string) *GradeReport {
	return &GradeReport{
		RunID:       runID,
		Source:      source,
		GeneratedAt: time.Now(),
	}
}

// Count returns the number of records in the report.
func (r *GradeReport) Count() int {
	return len(r.Records)
}

// IsEmpty reports whether no valid records were loaded.
func (r *GradeReport) IsEmpty() bool {
	return len(r.Records) == 0
}
