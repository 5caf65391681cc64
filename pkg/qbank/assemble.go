package qbank

import (
	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/models"
	"github.com/ukaji3/qbank-go/pkg/qbank/normalize"
)

// fieldSlot is one output field and the column it is read from.
type fieldSlot struct {
	column string
	field  models.Field
}

// recordLayout orders the output fields: mapped columns in header order, then
// mapped columns the table lacks, in mapping order. Section and lesson
// targets only feed the chapter builder and get no slot.
func recordLayout(table *models.Table, m *mapping.Mapping) []fieldSlot {
	var slots []fieldSlot
	add := func(column string) {
		for _, f := range m.Targets(column) {
			if f.ChapterSource() {
				continue
			}
			slots = append(slots, fieldSlot{column: column, field: f})
		}
	}

	for _, column := range table.Header {
		add(column)
	}
	for _, c := range m.Columns() {
		if !table.HasColumn(c.Name) {
			add(c.Name)
		}
	}
	return slots
}

// chapterCells resolves the chapter builder inputs of row.
func chapterCells(row models.RawRecord, m *mapping.Mapping) normalize.ChapterCells {
	chapter, section, lesson := m.ChapterColumns()
	return normalize.ChapterCells{
		Chapter: row.Get(chapter),
		Section: row.Get(section),
		Lesson:  row.Get(lesson),
	}
}

// AssembleRecords converts each row of table into one record, in row order.
func AssembleRecords(table *models.Table, m *mapping.Mapping) []models.Record {
	layout := recordLayout(table, m)
	withChapters := m.Has(models.FieldChapters)
	records := make([]models.Record, 0, len(table.Rows))

	for _, row := range table.Rows {
		var chapters normalize.ChapterCells
		if withChapters {
			chapters = chapterCells(row, m)
		}

		rec := models.Record{Fields: make([]models.FieldValue, 0, len(layout))}
		for _, slot := range layout {
			rec.Set(slot.field, normalize.Value(slot.field, row.Get(slot.column), chapters))
		}
		records = append(records, rec)
	}

	return records
}

// AssembleCatalogue builds a chapter for every row with chapter text and merges
// them into one forest.
func AssembleCatalogue(table *models.Table, m *mapping.Mapping) []models.Chapter {
	var chapters []models.Chapter

	for _, row := range table.Rows {
		ch := normalize.BuildCatalogueChapter(chapterCells(row, m))
		if ch.IsEmpty() {
			continue
		}
		chapters = append(chapters, ch)
	}

	return normalize.MergeChapters(chapters)
}
