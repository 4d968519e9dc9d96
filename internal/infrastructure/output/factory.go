// Package output renders grade reports as a text table, JSON or YAML.
package output

import (
	"fmt"
	"io"

	"github.com/reglet-dev/roster/internal/application/ports"
)

// FormatterFactory builds report formatters by name.
type FormatterFactory struct{}

// NewFormatterFactory creates a new formatter factory.
func NewFormatterFactory() *FormatterFactory {
	return &FormatterFactory{}
}

// Create returns a formatter for the given format name.
func (f *FormatterFactory) Create(
	format string,
	writer io.Writer,
	options ports.FormatterOptions,
) (ports.ReportFormatter, error) {
	highlight, err := NewHighlighter(options.Highlight)
	if err != nil {
		return nil, err
	}

	switch format {
	case "table":
		t := NewTableFormatter(writer).WithHighlighter(highlight)
		t.EnableColor = options.Color
		return t, nil
	case "json":
		j := NewJSONFormatter(writer, options.Indent)
		j.highlight = highlight
		return j, nil
	case "yaml":
		y := NewYAMLFormatter(writer)
		y.highlight = highlight
		return y, nil
	default:
		return nil, fmt.Errorf(
			"unknown format: %s (supported: %v)",
			format, f.SupportedFormats(),
		)
	}
}

// SupportedFormats returns list of available format names.
func (f *FormatterFactory) SupportedFormats() []string {
	return []string{"table", "json", "yaml"}
}
