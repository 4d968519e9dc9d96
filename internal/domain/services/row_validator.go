// Package services contains stateless domain services: row validation,
// ordering and aggregation of grade records.
package services

import (
	"errors"

	"github.com/reglet-dev/roster/internal/domain/diagnostics"
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/values"
)

// Default header names of the input file.
const (
	DefaultNameColumn  = "Nombre"
	DefaultGradeColumn = "Nota"
)

// Columns names the header fields holding the student name and grade.
type Columns struct {
	Name  string
	Grade string
}

// DefaultColumns returns the Nombre/Nota column pair.
func DefaultColumns() Columns {
	return Columns{Name: DefaultNameColumn, Grade: DefaultGradeColumn}
}

// RowOutcome classifies the result of validating one row.
type RowOutcome int

const (
	// RowAccepted means the row produced a record.
	RowAccepted RowOutcome = iota
	// RowMalformed means a field was missing or the grade was not a number.
	// Malformed rows are dropped without a diagnostic.
	RowMalformed
	// RowOutOfRange means the grade parsed but fell outside the range.
	// The row is dropped and a diagnostic is attached.
	RowOutOfRange
)

// String returns a short name for the outcome.
func (o RowOutcome) String() string {
	switch o {
	case RowAccepted:
		return "accepted"
	case RowMalformed:
		return "malformed"
	case RowOutOfRange:
		return "out_of_range"
	default:
		return "unknown"
	}
}

// RowResult is the outcome of validating a single row.
type RowResult struct {
	Diagnostic *diagnostics.Diagnostic
	Record     entities.Record
	Outcome    RowOutcome
}

// RowValidator turns raw rows into records.
type RowValidator struct {
	columns Columns
	rng     values.GradeRange
}

// NewRowValidator creates a validator for the given columns and grade range.
func NewRowValidator(columns Columns, rng values.GradeRange) *RowValidator {
	return &RowValidator{columns: columns, rng: rng}
}

// Range returns the accepted grade range.
func (v *RowValidator) Range() values.GradeRange {
	return v.rng
}

// Validate checks one row.
//
// Missing or empty name, missing grade and unparseable grade are all
// RowMalformed and carry no diagnostic. Only a numeric grade outside the
// range yields RowOutOfRange with a diagnostic naming the student.
func (v *RowValidator) Validate(row entities.Row) RowResult {
	name, ok := row.Field(v.columns.Name)
	if !ok || name == "" {
		return RowResult{Outcome: RowMalformed}
	}

	raw, ok := row.Field(v.columns.Grade)
	if !ok {
		return RowResult{Outcome: RowMalformed}
	}

	grade, err := values.ParseGrade(raw)
	if err != nil {
		return RowResult{Outcome: RowMalformed}
	}

	rec, err := entities.NewRecord(name, grade, v.rng)
	if errors.Is(err, entities.ErrGradeOutOfRange) {
		d := diagnostics.GradeOutOfRange(name, grade)
		return RowResult{Outcome: RowOutOfRange, Diagnostic: &d}
	}
	if err != nil {
		return RowResult{Outcome: RowMalformed}
	}

	return RowResult{Outcome: RowAccepted, Record: rec}
}
