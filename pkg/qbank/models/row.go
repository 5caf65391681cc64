package models

// RawRecord is one data row keyed by header name.
type RawRecord struct {
	// R is the sheet row index (1-based).
	R int
	// Cells maps header name to cell value. Columns without a value are absent.
	Cells map[string]Cell
}

// Get returns the cell under column, or MissingCell when the column is absent.
func (r RawRecord) Get(column string) Cell {
	if column == "" {
		return MissingCell
	}
	c, ok := r.Cells[column]
	if !ok {
		return MissingCell
	}
	return c
}

// Table is an ordered set of rows read from a single sheet.
type Table struct {
	// Sheet is the sheet name the rows came from.
	Sheet string
	// Header lists the column names in sheet order.
	Header []string
	// Rows holds the data rows in sheet order.
	Rows []RawRecord
}

// HasColumn reports whether the header contains name.
func (t *Table) HasColumn(name string) bool {
	for _, h := range t.Header {
		if h == name {
			return true
		}
	}
	return false
}
