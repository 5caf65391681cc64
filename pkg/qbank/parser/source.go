package parser

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// ErrSheetNotFound indicates the requested sheet is absent from the workbook.
var ErrSheetNotFound = errors.New("sheet not found")

// ErrUnsupportedFormat indicates the input extension has no reader.
var ErrUnsupportedFormat = errors.New("unsupported input format")

// Source yields header-keyed rows from a spreadsheet.
type Source interface {
	// Sheets lists the available sheet names in workbook order.
	Sheets() []string
	// Table reads the named sheet. It returns ErrSheetNotFound when absent.
	Table(sheet string) (*models.Table, error)
	// Close releases the underlying file.
	Close() error
}

// Options configures how a source is opened.
type Options struct {
	// Encoding is the text encoding of CSV input: utf-8 (default), gbk or gb18030.
	Encoding string
}

// Open opens path with the reader matching its extension.
func Open(path string, opts Options) (Source, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm", ".xltx", ".xltm":
		wb, err := OpenWorkbook(path)
		if err != nil {
			return nil, err
		}
		return wb, nil
	case ".csv":
		c, err := OpenCSV(path, opts.Encoding)
		if err != nil {
			return nil, err
		}
		return c, nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// buildTable turns raw string rows into a table. The first non-empty row is the
// header; fully blank rows after it are skipped. cell types each value.
func buildTable(sheet string, rows [][]string, cell func(rowIdx, colIdx int, value string) models.Cell) *models.Table {
	table := &models.Table{Sheet: sheet}

	minRow, _, _, maxCol := findDataBounds(rows)
	if minRow < 0 {
		return table
	}

	table.Header = buildHeader(rows[minRow], maxCol+1)

	for rowIdx := minRow + 1; rowIdx < len(rows); rowIdx++ {
		row := rows[rowIdx]
		if blankRow(row) {
			continue
		}

		rec := models.RawRecord{
			R:     rowIdx + 1,
			Cells: make(map[string]models.Cell, len(row)),
		}
		for colIdx, value := range row {
			if colIdx >= len(table.Header) || value == "" {
				continue
			}
			c := cell(rowIdx, colIdx, value)
			if c.Missing() {
				continue
			}
			rec.Cells[table.Header[colIdx]] = c
		}
		table.Rows = append(table.Rows, rec)
	}

	return table
}
