package source

import (
	"context"
	"fmt"

	apperrors "github.com/reglet-dev/roster/internal/application/errors"
	"github.com/reglet-dev/roster/internal/domain/entities"
	"github.com/xuri/excelize/v2"
)

// XLSXReader reads a worksheet of an Excel workbook. The first non-empty
// row is the header.
type XLSXReader struct {
	sheet string
}

// NewXLSXReader creates a reader for the named sheet; an empty name
// selects the first sheet of the workbook.
func NewXLSXReader(sheet string) *XLSXReader {
	return &XLSXReader{sheet: sheet}
}

// ReadRows opens the workbook, reads the sheet and closes the file.
func (r *XLSXReader) ReadRows(ctx context.Context, path string) ([]entities.Row, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, apperrors.NewSourceError(path, err)
	}
	defer func() {
		_ = f.Close() // Best-effort cleanup
	}()

	sheet := r.sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, nil
		}
		sheet = sheets[0]
	}

	grid, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, apperrors.NewSourceError(path, fmt.Errorf("failed to read sheet %q: %w", sheet, err))
	}

	var (
		header []string
		rows   []entities.Row
	)
	for _, cells := range grid {
		if err := ctx.Err(); err != nil {
			return nil, apperrors.NewSourceError(path, err)
		}
		if len(cells) == 0 {
			continue
		}
		if header == nil {
			header = cells
			continue
		}
		rows = append(rows, zipRow(header, cells))
	}

	return rows, nil
}
