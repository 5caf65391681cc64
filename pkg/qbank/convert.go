package qbank

import (
	"errors"
	"fmt"
	"os"

	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/models"
	"github.com/ukaji3/qbank-go/pkg/qbank/output"
	"github.com/ukaji3/qbank-go/pkg/qbank/parser"
)

// Convert reads the configured sheet of the spreadsheet at path and converts it.
func Convert(path string, opts Options) (*models.Result, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("%w: %s", ErrFileNotFound, path)
	}

	m, err := opts.ResolveMapping()
	if err != nil {
		return nil, err
	}

	src, err := parser.Open(path, parser.Options{Encoding: opts.Encoding})
	if err != nil {
		return nil, NewSourceError(path, "", "open", fmt.Errorf("%w: %w", ErrInvalidFormat, err))
	}
	defer src.Close()

	sheet := opts.ResolveSheet()
	table, err := src.Table(sheet)
	if err != nil {
		srcErr := NewSourceError(path, sheet, "read", err)
		if errors.Is(err, ErrSheetNotFound) {
			srcErr.Sheets = src.Sheets()
		}
		return nil, srcErr
	}

	variant := opts.Variant
	if variant == "" {
		variant = m.Variant()
	}

	result, err := ConvertTable(table, m, variant)
	if err != nil {
		return nil, err
	}
	result.BookName = output.BaseName(path)
	return result, nil
}

// ConvertTable converts rows already read from a source.
func ConvertTable(table *models.Table, m *mapping.Mapping, variant Variant) (*models.Result, error) {
	if table == nil {
		return nil, errors.New("nil table")
	}
	if m.Variant() != variant {
		return nil, fmt.Errorf("%w: mapping is for %s, converting %s", ErrVariantMismatch, m.Variant(), variant)
	}

	result := &models.Result{
		Sheet:    table.Sheet,
		Variant:  variant,
		RowCount: len(table.Rows),
	}

	switch variant {
	case VariantCatalogue:
		result.Chapters = AssembleCatalogue(table, m)
	default:
		result.Records = AssembleRecords(table, m)
	}

	return result, nil
}
