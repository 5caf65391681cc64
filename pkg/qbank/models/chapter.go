package models

// NodeType is the level of a chapter tree node.
type NodeType string

const (
	NodeChapter NodeType = "chapter"
	NodeSection NodeType = "section"
	NodeLesson  NodeType = "lesson"
)

// Chapter is a node of the chapter/section/lesson tree.
type Chapter struct {
	// Text is the trimmed heading. An empty chapter text means the row had no chapter data.
	Text string `json:"text"`
	// Type is the node level.
	Type NodeType `json:"type"`
	// Sub holds the child nodes in first-seen order. Never nil.
	Sub []Chapter `json:"sub"`
}

// NewChapter returns a childless node of the given level.
func NewChapter(typ NodeType, text string) Chapter {
	return Chapter{Text: text, Type: typ, Sub: []Chapter{}}
}

// EmptyChapter returns the sentinel for a row without chapter data.
func EmptyChapter() Chapter {
	return NewChapter(NodeChapter, "")
}

// IsEmpty reports whether the node carries no heading text.
func (c Chapter) IsEmpty() bool { return c.Text == "" }
