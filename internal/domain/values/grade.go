// Package values contains domain value objects that encapsulate
// primitive types with validation.
package values

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Default grade bounds for the 0-5 grading scale.
const (
	DefaultMinGrade = 0.0
	DefaultMaxGrade = 5.0
)

// GradeRange is the closed interval of acceptable grades.
type GradeRange struct {
	min float64
	max float64
}

// DefaultGradeRange returns the [0.0, 5.0] range.
func DefaultGradeRange() GradeRange {
	return GradeRange{min: DefaultMinGrade, max: DefaultMaxGrade}
}

// NewGradeRange creates a GradeRange. Both bounds must be finite and min <= max.
func NewGradeRange(lo, hi float64) (GradeRange, error) {
	if math.IsNaN(lo) || math.IsInf(lo, 0) || math.IsNaN(hi) || math.IsInf(hi, 0) {
		return GradeRange{}, fmt.Errorf("grade bounds must be finite: [%v, %v]", lo, hi)
	}
	if lo > hi {
		return GradeRange{}, fmt.Errorf("invalid grade range: min %v is greater than max %v", lo, hi)
	}
	return GradeRange{min: lo, max: hi}, nil
}

// MustNewGradeRange creates a GradeRange or panics (for tests only)
func MustNewGradeRange(lo, hi float64) GradeRange {
	r, err := NewGradeRange(lo, hi)
	if err != nil {
		panic(err)
	}
	return r
}

// Min returns the lower bound.
func (r GradeRange) Min() float64 {
	return r.min
}

// Max returns the upper bound.
func (r GradeRange) Max() float64 {
	return r.max
}

// Contains reports whether g lies within the range, bounds included.
// NaN is never contained.
func (r GradeRange) Contains(g float64) bool {
	return r.min <= g && g <= r.max
}

// String returns the range as "[min, max]".
func (r GradeRange) String() string {
	return "[" + FormatGrade(r.min) + ", " + FormatGrade(r.max) + "]"
}

// ParseGrade parses a grade from its textual form. Surrounding whitespace
// is ignored. NaN and infinities parse successfully; range checks reject them.
// Values beyond float64 saturate to ±Inf instead of failing.
func ParseGrade(s string) (float64, error) {
	g, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if errors.Is(err, strconv.ErrRange) {
		return g, nil
	}
	if err != nil {
		return 0, fmt.Errorf("invalid grade %q: %w", s, err)
	}
	return g, nil
}

// FormatGrade renders a grade in its shortest exact form, always keeping a
// decimal part for whole numbers ("6.0", "4.25", "inf", "nan").
func FormatGrade(g float64) string {
	switch {
	case math.IsNaN(g):
		return "nan"
	case math.IsInf(g, 1):
		return "inf"
	case math.IsInf(g, -1):
		return "-inf"
	}
	s := strconv.FormatFloat(g, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
