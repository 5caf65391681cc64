package mapping

import "github.com/ukaji3/qbank-go/pkg/qbank/models"

// File is the on-disk mapping document.
type File struct {
	// Version is the schema version. Defaults to "1".
	Version string `yaml:"version"`
	// Variant is the conversion the mapping is written for.
	Variant models.Variant `yaml:"variant"`
	// Sheet optionally names the sheet to read.
	Sheet string `yaml:"sheet,omitempty"`
	// Columns lists column to field assignments in output order.
	Columns []Column `yaml:"columns"`
}

// Column assigns one sheet column to one or more output fields.
type Column struct {
	// Name is the header text, matched verbatim.
	Name string `yaml:"column"`
	// Targets are the fields fed by this column.
	Targets Targets `yaml:"target"`
}
