package qbank

import (
	"errors"
	"fmt"

	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/parser"
)

// ErrFileNotFound indicates the input file does not exist.
var ErrFileNotFound = errors.New("file not found")

// ErrInvalidFormat indicates the input file could not be read as a spreadsheet.
var ErrInvalidFormat = errors.New("invalid spreadsheet format")

// ErrSheetNotFound indicates the required sheet is absent from the input.
var ErrSheetNotFound = parser.ErrSheetNotFound

// ErrInvalidMapping indicates the field mapping failed validation.
var ErrInvalidMapping = mapping.ErrInvalidMapping

// ErrVariantMismatch indicates a mapping written for another variant.
var ErrVariantMismatch = errors.New("mapping variant does not match conversion")

// SourceError represents an error while reading the input.
type SourceError struct {
	Path  string
	Sheet string
	Op    string // "open", "read"
	Err   error
	// Sheets lists the sheets the input offers when the requested one is absent.
	Sheets []string
}

func (e *SourceError) Error() string {
	if e.Sheet == "" {
		return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
	}
	return fmt.Sprintf("%s %s (sheet %q): %v", e.Op, e.Path, e.Sheet, e.Err)
}

func (e *SourceError) Unwrap() error {
	return e.Err
}

// NewSourceError creates a new SourceError.
func NewSourceError(path, sheet, op string, err error) *SourceError {
	return &SourceError{
		Path:  path,
		Sheet: sheet,
		Op:    op,
		Err:   err,
	}
}
