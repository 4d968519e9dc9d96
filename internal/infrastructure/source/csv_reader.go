// Package source provides row readers for roster input files.
package source

import (
	"bufio"
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"unicode/utf8"

	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/domain/entities"
)

var utf8BOM = []byte{0xEF, 0xBB, 0xBF}

// CSVReader reads comma-delimited UTF-8 files whose first row is a header.
type CSVReader struct{}

// NewCSVReader creates a new CSV reader.
func NewCSVReader() *CSVReader {
	return &CSVReader{}
}

// ReadRows opens path, reads every data row and closes the file.
// Symlinks are followed.
func (r *CSVReader) ReadRows(ctx context.Context, path string) ([]entities.Row, error) {
	//nolint:gosec // G304: the roster path is user-provided by design
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}
	defer func() {
		_ = file.Close() // Best-effort cleanup
	}()

	rows, err := r.ReadRowsFromReader(ctx, file)
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}

	return rows, nil
}

// ReadRowsFromReader decodes CSV from in. A leading byte order mark is
// skipped, blank lines are ignored and rows shorter than the header simply
// lack the trailing fields. Invalid UTF-8 anywhere fails the whole read.
func (r *CSVReader) ReadRowsFromReader(ctx context.Context, in io.Reader) ([]entities.Row, error) {
	br := bufio.NewReader(in)
	if prefix, err := br.Peek(len(utf8BOM)); err == nil && bytes.Equal(prefix, utf8BOM) {
		_, _ = br.Discard(len(utf8BOM))
	}

	cr := csv.NewReader(br)
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}
	if err := checkUTF8(cr, header); err != nil {
		return nil, err
	}

	var rows []entities.Row
	for {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read row: %w", err)
		}
		if err := checkUTF8(cr, record); err != nil {
			return nil, err
		}

		rows = append(rows, zipRow(header, record))
	}

	return rows, nil
}

func checkUTF8(cr *csv.Reader, fields []string) error {
	for i, f := range fields {
		if !utf8.ValidString(f) {
			line, col := cr.FieldPos(i)
			return fmt.Errorf("invalid UTF-8 at line %d, column %d", line, col)
		}
	}
	return nil
}

// zipRow pairs header names with values. Later duplicate headers win.
func zipRow(header, values []string) entities.Row {
	row := make(entities.Row, len(header))
	for i, name := range header {
		if i >= len(values) {
			break
		}
		row[name] = values[i]
	}
	return row
}
