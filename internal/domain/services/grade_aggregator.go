package services

import (
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/report"
)

// GradeAggregator computes summary statistics over grade records.
type GradeAggregator struct{}

// NewGradeAggregator creates a new grade aggregator.
func NewGradeAggregator() *GradeAggregator {
	return &GradeAggregator{}
}

// Summarize returns the count and arithmetic mean of all grades.
// HasMean is false for an empty input.
func (a *GradeAggregator) Summarize(records []entities.Record) report.Summary {
	if len(records) == 0 {
		return report.Summary{}
	}

	var sum float64
	for _, r := range records {
		sum += r.Grade()
	}

	return report.Summary{
		Count:   len(records),
		Mean:    sum / float64(len(records)),
		HasMean: true,
	}
}
