package models

// Result is the outcome of one conversion run.
type Result struct {
	// BookName is the input file name without directory and extension.
	BookName string `json:"book_name"`
	// Sheet is the sheet the rows were read from.
	Sheet string `json:"sheet"`
	// Variant is the conversion variant.
	Variant Variant `json:"variant"`
	// RowCount is the number of data rows read.
	RowCount int `json:"row_count"`
	// Records holds one record per row (questions variant).
	Records []Record `json:"records,omitempty"`
	// Chapters holds the merged forest (catalogue variant).
	Chapters []Chapter `json:"chapters,omitempty"`
}

// Payload returns the value persisted by the sink.
func (r *Result) Payload() any {
	if r.Variant == VariantCatalogue {
		return r.Chapters
	}
	return r.Records
}

// Empty reports whether there is nothing to persist.
func (r *Result) Empty() bool {
	if r.Variant == VariantCatalogue {
		return len(r.Chapters) == 0
	}
	return len(r.Records) == 0
}
