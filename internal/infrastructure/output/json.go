package output

import (
	"encoding/json"
	"io"

	"github.com/reglet-dev/roster/internal/domain/report"
)

// JSONFormatter formats grade reports as JSON.
type JSONFormatter struct {
	writer    io.Writer
	highlight *Highlighter
	indent    bool
}

// NewJSONFormatter creates a new JSON formatter.
// If indent is true, the output will be pretty-printed with indentation.
func NewJSONFormatter(w io.Writer, indent bool) *JSONFormatter {
	return &JSONFormatter{
		writer: w,
		indent: indent,
	}
}

// Format writes the report as JSON.
func (f *JSONFormatter) Format(r *report.GradeReport) error {
	view := newReportView(r, f.highlight)

	var data []byte
	var err error

	if f.indent {
		data, err = json.MarshalIndent(view, "", "  ")
	} else {
		data, err = json.Marshal(view)
	}

	if err != nil {
		return err
	}

	_, err = f.writer.Write(data)
	if err != nil {
		return err
	}

	// Add newline for better terminal output
	_, err = f.writer.Write([]byte("\n"))
	return err
}
