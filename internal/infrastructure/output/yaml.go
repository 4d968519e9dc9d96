package output

import (
	"io"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/roster/internal/domain/report"
)

// YAMLFormatter formats grade reports as YAML.
type YAMLFormatter struct {
	writer    io.Writer
	highlight *Highlighter
}

// NewYAMLFormatter creates a new YAML formatter.
func NewYAMLFormatter(w io.Writer) *YAMLFormatter {
	return &YAMLFormatter{writer: w}
}

// Format writes the report as YAML.
func (f *YAMLFormatter) Format(r *report.GradeReport) error {
	encoder := yaml.NewEncoder(f.writer, yaml.Indent(2))

	if err := encoder.Encode(newReportView(r, f.highlight)); err != nil {
		return err
	}

	return encoder.Close()
}
