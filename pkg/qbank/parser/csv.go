package parser

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// CSV is a Source holding the single table of a CSV file.
// It answers every sheet name with that table.
type CSV struct {
	table *models.Table
}

// OpenCSV reads a CSV file in the given encoding.
func OpenCSV(path, enc string) (*CSV, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	name := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	table, err := ReadCSV(f, name, enc)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return &CSV{table: table}, nil
}

// Sheets implements Source.
func (c *CSV) Sheets() []string { return []string{c.table.Sheet} }

// Table implements Source.
func (c *CSV) Table(string) (*models.Table, error) { return c.table, nil }

// Close implements Source.
func (c *CSV) Close() error { return nil }

// ReadCSV parses CSV data into a table named sheet. Quoted fields may span
// lines. Columns whose non-empty values are all numbers are typed numeric.
func ReadCSV(r io.Reader, sheet, enc string) (*models.Table, error) {
	dec, err := decoder(enc)
	if err != nil {
		return nil, err
	}

	cr := csv.NewReader(transform.NewReader(r, dec))
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}

	minRow, _, _, maxCol := findDataBounds(rows)
	columns := make([][]models.Cell, maxCol+1)
	for col := range columns {
		var values []string
		for rowIdx := minRow + 1; minRow >= 0 && rowIdx < len(rows); rowIdx++ {
			values = append(values, cellAt(rows[rowIdx], col))
		}
		columns[col] = classifyColumn(values)
	}

	return buildTable(sheet, rows, func(rowIdx, colIdx int, _ string) models.Cell {
		return columns[colIdx][rowIdx-minRow-1]
	}), nil
}

func cellAt(row []string, col int) string {
	if col < len(row) {
		return row[col]
	}
	return ""
}

// decoder returns the transformer decoding enc into UTF-8.
// A leading UTF-8 byte order mark is always dropped.
func decoder(enc string) (transform.Transformer, error) {
	var e encoding.Encoding
	switch strings.ToLower(strings.ReplaceAll(enc, "-", "")) {
	case "", "utf8":
		return unicode.BOMOverride(unicode.UTF8.NewDecoder()), nil
	case "gbk", "cp936":
		e = simplifiedchinese.GBK
	case "gb18030":
		e = simplifiedchinese.GB18030
	default:
		return nil, fmt.Errorf("unsupported encoding %q", enc)
	}
	return unicode.BOMOverride(e.NewDecoder()), nil
}
