// Package parser reads question-bank sheets into header-keyed tables.
package parser

import (
	"strconv"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
	"github.com/xuri/excelize/v2"
)

// isNumeric reports whether s parses as a number.
func isNumeric(s string) bool {
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

// classifyCell types a raw xlsx cell value using the stored cell type.
// String and formula-string cells are text, error cells (#N/A, #REF!, ...) are
// missing, anything else is numeric when its raw value parses as a number.
func classifyCell(value string, cellType excelize.CellType) models.Cell {
	if value == "" {
		return models.MissingCell
	}

	switch cellType {
	case excelize.CellTypeSharedString, excelize.CellTypeInlineString, excelize.CellTypeFormula:
		return models.TextCell(value)
	case excelize.CellTypeError:
		return models.MissingCell
	}

	if isNumeric(value) {
		return models.NumberCell(value)
	}
	return models.TextCell(value)
}

// classifyColumn types every value of a text column at once: the column is
// numeric only when all of its non-empty values parse as numbers.
func classifyColumn(values []string) []models.Cell {
	numeric := true
	seen := false
	for _, v := range values {
		if v == "" {
			continue
		}
		seen = true
		if !isNumeric(v) {
			numeric = false
			break
		}
	}

	cells := make([]models.Cell, len(values))
	for i, v := range values {
		switch {
		case v == "":
			cells[i] = models.MissingCell
		case numeric && seen:
			cells[i] = models.NumberCell(v)
		default:
			cells[i] = models.TextCell(v)
		}
	}
	return cells
}
