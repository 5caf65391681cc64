package parser

import (
	"fmt"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
	"github.com/xuri/excelize/v2"
)

// Workbook is a Source backed by an xlsx file.
type Workbook struct {
	f *excelize.File
}

// OpenWorkbook opens an xlsx workbook. Cell values are read unformatted so
// numbers keep their stored digits.
func OpenWorkbook(path string) (*Workbook, error) {
	f, err := excelize.OpenFile(path, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}
	return NewWorkbook(f), nil
}

// NewWorkbook wraps an already opened excelize file.
func NewWorkbook(f *excelize.File) *Workbook {
	return &Workbook{f: f}
}

// Sheets implements Source.
func (w *Workbook) Sheets() []string {
	return w.f.GetSheetList()
}

// Table implements Source.
func (w *Workbook) Table(sheet string) (*models.Table, error) {
	return ReadSheet(w.f, sheet)
}

// Close implements Source.
func (w *Workbook) Close() error {
	return w.f.Close()
}

// ReadSheet reads sheetName of f into a table keyed by the header row.
func ReadSheet(f *excelize.File, sheetName string) (*models.Table, error) {
	if idx, err := f.GetSheetIndex(sheetName); err != nil || idx < 0 {
		return nil, fmt.Errorf("%w: %q", ErrSheetNotFound, sheetName)
	}

	rows, err := f.GetRows(sheetName, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, err
	}

	return buildTable(sheetName, rows, func(rowIdx, colIdx int, value string) models.Cell {
		cellType := excelize.CellTypeUnset
		if name, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx+1); err == nil {
			if t, err := f.GetCellType(sheetName, name); err == nil {
				cellType = t
			}
		}
		return classifyCell(value, cellType)
	}), nil
}
