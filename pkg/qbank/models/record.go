package models

// FieldValue is one normalized value of an output record.
type FieldValue struct {
	Field Field
	// Value is a string, []string, float64 or Chapter.
	Value any
}

// Record is one converted question. Fields keep their assembly order and are
// written as a JSON object by the output package.
type Record struct {
	Fields []FieldValue
}

// Set stores value under field, replacing an earlier value in place.
func (r *Record) Set(field Field, value any) {
	for i := range r.Fields {
		if r.Fields[i].Field == field {
			r.Fields[i].Value = value
			return
		}
	}
	r.Fields = append(r.Fields, FieldValue{Field: field, Value: value})
}

// Len returns the number of fields.
func (r Record) Len() int { return len(r.Fields) }
