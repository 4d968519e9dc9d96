package dto

import (
	"time"

	"github.com/reglet-dev/roster/internal/domain/report"
)

// GradeReportResponse contains the result of building a grade report.
type GradeReportResponse struct {
	// Report holds the sorted records, the summary and the diagnostics
	Report *report.GradeReport

	// Metadata contains response metadata
	Metadata ResponseMetadata
}

// ResponseMetadata contains metadata about the response.
type ResponseMetadata struct {
	// ProcessedAt is when the request was processed
	ProcessedAt time.Time

	// RequestID from the original request
	RequestID string

	// Duration is how long the request took
	Duration time.Duration

	// SkippedRows counts rows dropped without a diagnostic
	SkippedRows int
}
