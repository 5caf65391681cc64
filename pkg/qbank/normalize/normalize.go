package normalize

import (
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// ChapterCells holds the three raw cells a chapter tree is built from.
type ChapterCells struct {
	Chapter models.Cell
	Section models.Cell
	Lesson  models.Cell
}

// Value normalizes cell for field. Chapter fields ignore cell and build the
// tree from chapters instead.
func Value(field models.Field, cell models.Cell, chapters ChapterCells) any {
	switch field.Kind() {
	case models.KindChapters:
		return BuildRowChapter(chapters)
	case models.KindMultiLine:
		if cell.Missing() {
			return []string{}
		}
		return SplitLines(cell.Raw)
	case models.KindNumber:
		if cell.Missing() {
			return 0.0
		}
		return ParseNumber(cell.Raw)
	default:
		if cell.Missing() {
			return ""
		}
		return strings.TrimSpace(cell.Raw)
	}
}

// SplitLines splits s on newlines and returns the trimmed non-empty lines in order.
// Duplicate lines are kept.
func SplitLines(s string) []string {
	lines := strings.Split(s, "\n")
	result := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		result = append(result, line)
	}
	return result
}

// ParseNumber parses s as a float64 and returns 0 when it is not a finite number.
func ParseNumber(s string) float64 {
	f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return f
}

// text returns the trimmed string content of a text cell.
// Numeric and missing cells yield "".
func text(c models.Cell) string {
	if !c.IsText() {
		return ""
	}
	return strings.TrimSpace(c.Raw)
}
