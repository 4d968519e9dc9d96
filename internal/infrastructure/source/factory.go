package source

import (
	"path/filepath"
	"strings"

	"github.com/reglet-dev/roster/internal/application/ports"
)

// ReaderFactory implements ports.RowReaderFactory by file extension.
type ReaderFactory struct {
	csv  *CSVReader
	xlsx *XLSXReader
}

// NewReaderFactory creates a factory. sheet selects the worksheet for
// Excel inputs (empty = first sheet).
func NewReaderFactory(sheet string) *ReaderFactory {
	return &ReaderFactory{
		csv:  NewCSVReader(),
		xlsx: NewXLSXReader(sheet),
	}
}

// ForPath returns the XLSX reader for .xlsx files and the CSV reader otherwise.
func (f *ReaderFactory) ForPath(path string) ports.RowReader {
	if strings.EqualFold(filepath.Ext(path), ".xlsx") {
		return f.xlsx
	}
	return f.csv
}
