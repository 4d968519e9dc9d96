package output

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/reglet-dev/roster/internal/domain/report"
)

const (
	colorReset = "\033[0m"
	colorRed   = "\033[31m"
	colorBold  = "\033[1m"
)

const (
	namePadding = 4
	gradeWidth  = 10
)

// Console messages.
const (
	msgNoStudents     = "No hay estudiantes para mostrar."
	msgNoAverage      = "No hay notas para promediar."
	headerName        = "NOMBRE"
	headerGrade       = "NOTA"
	totalLineFormat   = "Total de estudiantes: %d\n"
	averageLineFormat = "Promedio de notas: %.2f\n"
)

// TableFormatter renders a grade report as a fixed-width text table
// followed by the mean.
type TableFormatter struct {
	writer      io.Writer
	highlight   *Highlighter
	EnableColor bool
}

// NewTableFormatter creates a new table formatter.
func NewTableFormatter(w io.Writer) *TableFormatter {
	return &TableFormatter{
		writer:      w,
		EnableColor: true, // Default to true, caller can disable
	}
}

// WithHighlighter sets the expression used to mark rows.
func (f *TableFormatter) WithHighlighter(h *Highlighter) *TableFormatter {
	f.highlight = h
	return f
}

// colorize returns the string wrapped in ANSI color codes if enabled.
func (f *TableFormatter) colorize(text, code string) string {
	if !f.EnableColor {
		return text
	}
	return code + text + colorReset
}

// Format writes the roster table and then the average.
func (f *TableFormatter) Format(r *report.GradeReport) error {
	f.FormatRoster(r.Records)
	f.FormatAverage(r.Summary)
	return nil
}

// FormatRoster writes records in the order given. The name column is as
// wide as the longest name plus padding; grades use two decimals.
//
//nolint:errcheck // Table formatting errors are non-critical (best-effort terminal output)
func (f *TableFormatter) FormatRoster(records []entities.Record) {
	if len(records) == 0 {
		fmt.Fprintln(f.writer, msgNoStudents)
		return
	}

	nameWidth := longestName(records) + namePadding

	fmt.Fprintf(f.writer, "%-*s%-*s\n", nameWidth, headerName, gradeWidth, headerGrade)
	fmt.Fprintln(f.writer, strings.Repeat("-", nameWidth+gradeWidth))

	for _, rec := range records {
		line := fmt.Sprintf("%-*s%-*.2f", nameWidth, rec.Name(), gradeWidth, rec.Grade())
		if f.highlight.Match(rec) {
			line = f.colorize(line, colorRed+colorBold)
		}
		fmt.Fprintln(f.writer, line)
	}

	fmt.Fprintf(f.writer, totalLineFormat, len(records))
}

// FormatAverage writes the mean with two decimals.
//
//nolint:errcheck // Best-effort terminal output
func (f *TableFormatter) FormatAverage(s report.Summary) {
	if !s.HasMean {
		fmt.Fprintln(f.writer, msgNoAverage)
		return
	}
	fmt.Fprintf(f.writer, averageLineFormat, s.Mean)
}

// longestName returns the length in code points of the longest name.
func longestName(records []entities.Record) int {
	longest := 0
	for _, rec := range records {
		if n := utf8.RuneCountInString(rec.Name()); n > longest {
			longest = n
		}
	}
	return longest
}
