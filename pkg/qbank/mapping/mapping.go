package mapping

import (
	"slices"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// Mapping is a validated, read-only column to field mapping.
type Mapping struct {
	variant models.Variant
	sheet   string
	columns []Column
	byName  map[string]int

	chapterColumn string
	sectionColumn string
	lessonColumn  string
}

// New validates columns for variant and returns the mapping.
func New(variant models.Variant, columns []Column) (*Mapping, error) {
	return FromFile(&File{Version: currentVersion, Variant: variant, Columns: columns})
}

// FromFile validates a parsed mapping document and returns the mapping.
func FromFile(mf *File) (*Mapping, error) {
	if err := Validate(mf); err != nil {
		return nil, err
	}

	m := &Mapping{
		variant: mf.Variant,
		sheet:   mf.Sheet,
		columns: make([]Column, 0, len(mf.Columns)),
		byName:  make(map[string]int, len(mf.Columns)),
	}
	for _, c := range mf.Columns {
		c.Targets = slices.Clone(c.Targets)
		m.byName[c.Name] = len(m.columns)
		m.columns = append(m.columns, c)

		for _, f := range c.Targets {
			switch f {
			case models.FieldChapters:
				m.chapterColumn = c.Name
			case models.FieldSection:
				m.sectionColumn = c.Name
			case models.FieldLesson:
				m.lessonColumn = c.Name
			}
		}
	}
	return m, nil
}

// Variant returns the conversion variant the mapping targets.
func (m *Mapping) Variant() models.Variant { return m.variant }

// Sheet returns the sheet named by the mapping file, or "".
func (m *Mapping) Sheet() string { return m.sheet }

// Columns returns the mapped columns in mapping order.
func (m *Mapping) Columns() []Column {
	out := make([]Column, len(m.columns))
	for i, c := range m.columns {
		out[i] = Column{Name: c.Name, Targets: slices.Clone(c.Targets)}
	}
	return out
}

// Targets returns the fields fed by column, or nil when it is not mapped.
func (m *Mapping) Targets(column string) []models.Field {
	i, ok := m.byName[column]
	if !ok {
		return nil
	}
	return slices.Clone(m.columns[i].Targets)
}

// ChapterColumns returns the columns feeding the chapter builder.
// Unmapped levels are returned as "".
func (m *Mapping) ChapterColumns() (chapter, section, lesson string) {
	return m.chapterColumn, m.sectionColumn, m.lessonColumn
}

// Has reports whether some column feeds field.
func (m *Mapping) Has(field models.Field) bool {
	for _, c := range m.columns {
		if slices.Contains(c.Targets, field) {
			return true
		}
	}
	return false
}
