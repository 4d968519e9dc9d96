// Package diagnostics models the side-channel events produced while loading
// a roster. Components return diagnostics as data; delivery to a console or
// log is the caller's concern.
package diagnostics

import (
	"fmt"

	"github.com/reglet-dev/roster/internal/domain/values"
)

// Kind classifies a diagnostic.
type Kind string

const (
	// KindSourceNotFound means the input file does not exist.
	KindSourceNotFound Kind = "source_not_found"
	// KindSourceUnreadable covers every other failure while reading the input.
	KindSourceUnreadable Kind = "source_unreadable"
	// KindGradeOutOfRange means a row had a numeric grade outside the accepted range.
	KindGradeOutOfRange Kind = "grade_out_of_range"
)

// Diagnostic is a single human-readable event about the input.
type Diagnostic struct {
	Err     error  `json:"-" yaml:"-"`
	Kind    Kind   `json:"kind" yaml:"kind"`
	Source  string `json:"source,omitempty" yaml:"source,omitempty"`
	Student string `json:"student,omitempty" yaml:"student,omitempty"`
	Value   string `json:"value,omitempty" yaml:"value,omitempty"`
	Message string `json:"message" yaml:"message"`
}

// SourceNotFound reports a missing input file.
func SourceNotFound(path string, err error) Diagnostic {
	return Diagnostic{
		Kind:    KindSourceNotFound,
		Source:  path,
		Err:     err,
		Message: fmt.Sprintf("Error: No se encontró el archivo %s", path),
	}
}

// SourceUnreadable reports any other failure while reading the input file.
func SourceUnreadable(path string, err error) Diagnostic {
	return Diagnostic{
		Kind:    KindSourceUnreadable,
		Source:  path,
		Err:     err,
		Message: fmt.Sprintf("Error al cargar el archivo: %v", err),
	}
}

// GradeOutOfRange reports a row whose grade parsed but fell outside the range.
func GradeOutOfRange(student string, grade float64) Diagnostic {
	v := values.FormatGrade(grade)
	return Diagnostic{
		Kind:    KindGradeOutOfRange,
		Student: student,
		Value:   v,
		Message: fmt.Sprintf("Nota inválida para %s: %s", student, v),
	}
}

// String returns the human-readable message.
func (d Diagnostic) String() string {
	return d.Message
}

// Collector accumulates diagnostics in order. The zero value is ready to use.
type Collector struct {
	items []Diagnostic
}

// Report appends a diagnostic.
func (c *Collector) Report(d Diagnostic) {
	c.items = append(c.items, d)
}

// All returns a copy of the collected diagnostics.
func (c *Collector) All() []Diagnostic {
	out := make([]Diagnostic, len(c.items))
	copy(out, c.items)
	return out
}

// Len returns the number of collected diagnostics.
func (c *Collector) Len() int {
	return len(c.items)
}

// OfKind returns the diagnostics of the given kind.
func (c *Collector) OfKind(kind Kind) []Diagnostic {
	var out []Diagnostic
	for _, d := range c.items {
		if d.Kind == kind {
			out = append(out, d)
		}
	}
	return out
}
