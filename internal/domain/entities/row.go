package entities

// Row is one data row of a tabular input, keyed by header name.
// Only the fields the row actually carries are present.
type Row map[string]string

// Field returns the value of a column and whether the row carries it.
func (r Row) Field(column string) (string, bool) {
	v, ok := r[column]
	return v, ok
}
