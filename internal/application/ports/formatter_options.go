package ports

// FormatterOptions configures output formatters.
type FormatterOptions struct {
	// Highlight is an optional boolean expression over name and grade.
	Highlight string
	// Indent pretty-prints JSON output.
	Indent bool
	// Color enables ANSI colour in table output.
	Color bool
}
