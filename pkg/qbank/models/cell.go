// Package models defines data structures for question-bank conversion.
package models

// CellKind classifies a raw spreadsheet cell.
type CellKind int

const (
	// CellMissing marks an absent or blank cell.
	CellMissing CellKind = iota
	// CellText is a cell holding a string.
	CellText
	// CellNumber is a cell holding a numeric value.
	CellNumber
)

// String returns the kind name.
func (k CellKind) String() string {
	switch k {
	case CellText:
		return "text"
	case CellNumber:
		return "number"
	default:
		return "missing"
	}
}

// Cell is a single raw cell value as read from the row source.
type Cell struct {
	// Kind tells whether the cell is missing, text or numeric.
	Kind CellKind
	// Raw is the cell value as stored. Empty when Kind is CellMissing.
	Raw string
}

// MissingCell is the zero cell.
var MissingCell = Cell{}

// TextCell returns a text cell.
func TextCell(s string) Cell { return Cell{Kind: CellText, Raw: s} }

// NumberCell returns a numeric cell holding its stored textual form.
func NumberCell(s string) Cell { return Cell{Kind: CellNumber, Raw: s} }

// Missing reports whether the cell is absent.
func (c Cell) Missing() bool { return c.Kind == CellMissing }

// IsText reports whether the cell holds a string.
func (c Cell) IsText() bool { return c.Kind == CellText }
