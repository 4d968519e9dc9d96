// Package entities contains domain entities.
package entities

import (
	"errors"
	"fmt"

	"github.com/reglet-dev/roster/internal/domain/values"
)

// ErrEmptyName is returned when a record is built without a student name.
var ErrEmptyName = errors.New("student name is empty")

// ErrGradeOutOfRange is returned when a grade falls outside the accepted range.
var ErrGradeOutOfRange = errors.New("grade out of range")

// Record is a validated (name, grade) pair. Records are immutable;
// duplicate names are allowed and never merged.
type Record struct {
	name  string
	grade float64
}

// NewRecord validates name and grade against rng and builds a Record.
// The name is kept exactly as read.
func NewRecord(name string, grade float64, rng values.GradeRange) (Record, error) {
	if name == "" {
		return Record{}, ErrEmptyName
	}
	if !rng.Contains(grade) {
		return Record{}, fmt.Errorf("%w: %s not in %s", ErrGradeOutOfRange, values.FormatGrade(grade), rng)
	}
	return Record{name: name, grade: grade}, nil
}

// MustNewRecord builds a Record within the default range or panics (for tests only)
func MustNewRecord(name string, grade float64) Record {
	r, err := NewRecord(name, grade, values.DefaultGradeRange())
	if err != nil {
		panic(err)
	}
	return r
}

// Name returns the student name.
func (r Record) Name() string {
	return r.name
}

// Grade returns the numeric grade.
func (r Record) Grade() float64 {
	return r.grade
}

// Equals reports whether both fields match.
func (r Record) Equals(other Record) bool {
	return r.name == other.name && r.grade == other.grade
}
