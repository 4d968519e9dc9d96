// Package dto contains data transfer objects for application layer use cases.
package dto

import (
	"github.com/reglet-dev/roster/internal/domain/services"
	"github.com/reglet-dev/roster/internal/domain/values"
)

// GradeReportRequest encapsulates all inputs needed to build a grade report.
type GradeReportRequest struct {
	InputPath string
	Columns   services.Columns
	Range     values.GradeRange
	Metadata  RequestMetadata
}

// RequestMetadata contains metadata for request tracking.
type RequestMetadata struct {
	// RequestID uniquely identifies this request
	RequestID string
}

// NewGradeReportRequest returns a request for path with the default
// columns and the default grade range.
func NewGradeReportRequest(path string) GradeReportRequest {
	return GradeReportRequest{
		InputPath: path,
		Columns:   services.DefaultColumns(),
		Range:     values.DefaultGradeRange(),
	}
}
