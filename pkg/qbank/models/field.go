package models

// Field is a canonical output field name.
type Field string

const (
	FieldQuestion   Field = "question"
	FieldChoice     Field = "choice"
	FieldAnswer     Field = "answer"
	FieldAnalysis   Field = "analysis"
	FieldComment    Field = "comment"
	FieldTishi      Field = "tishi"
	FieldTilei      Field = "tilei"
	FieldDifficulty Field = "difficulty"
	FieldSubject    Field = "subject"
	FieldStep       Field = "step"
	FieldGrade      Field = "grade"
	FieldBookName   Field = "bookname"
	FieldBookIsbn   Field = "bookIsbn"
	FieldChapters   Field = "chapters"
	FieldKnowledge  Field = "knowledge"

	// FieldSection and FieldLesson feed the chapter builder only and are never emitted.
	FieldSection Field = "section"
	FieldLesson  Field = "lesson"
)

// FieldKind selects the normalization rule for a field.
type FieldKind int

const (
	KindText FieldKind = iota
	KindMultiLine
	KindNumber
	KindChapters
)

// String returns the kind name.
func (k FieldKind) String() string {
	switch k {
	case KindMultiLine:
		return "multiline"
	case KindNumber:
		return "number"
	case KindChapters:
		return "chapters"
	default:
		return "text"
	}
}

// Kind returns the normalization kind of f.
func (f Field) Kind() FieldKind {
	switch f {
	case FieldChoice, FieldKnowledge:
		return KindMultiLine
	case FieldDifficulty:
		return KindNumber
	case FieldChapters:
		return KindChapters
	default:
		return KindText
	}
}

// ChapterSource reports whether f is consumed only by the chapter builder.
func (f Field) ChapterSource() bool {
	return f == FieldSection || f == FieldLesson
}

// QuestionFields lists the targets accepted by the per-row conversion.
var QuestionFields = []Field{
	FieldQuestion, FieldChoice, FieldAnswer, FieldAnalysis, FieldComment,
	FieldTishi, FieldTilei, FieldDifficulty, FieldSubject, FieldStep,
	FieldGrade, FieldBookName, FieldBookIsbn, FieldChapters, FieldKnowledge,
	FieldSection, FieldLesson,
}

// CatalogueFields lists the targets accepted by the catalogue conversion.
var CatalogueFields = []Field{FieldChapters, FieldSection, FieldLesson}
