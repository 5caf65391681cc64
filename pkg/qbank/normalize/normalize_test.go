package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

func TestValueMultiLine(t *testing.T) {
	tests := []struct {
		name     string
		cell     models.Cell
		expected []string
	}{
		{"missing", models.MissingCell, []string{}},
		{"single", models.TextCell("A. 氧气"), []string{"A. 氧气"}},
		{"lines", models.TextCell("A. 1\nB. 2\n\n  C. 3  \n"), []string{"A. 1", "B. 2", "C. 3"}},
		{"crlf", models.TextCell("A\r\nB\r\n"), []string{"A", "B"}},
		{"duplicates kept", models.TextCell("x\nx"), []string{"x", "x"}},
		{"blank text", models.TextCell("  \n \n"), []string{}},
		{"number", models.NumberCell("42"), []string{"42"}},
	}

	for _, field := range []models.Field{models.FieldChoice, models.FieldKnowledge} {
		for _, tt := range tests {
			t.Run(string(field)+"/"+tt.name, func(t *testing.T) {
				got := Value(field, tt.cell, ChapterCells{})
				require.IsType(t, []string{}, got)
				assert.Equal(t, tt.expected, got)
			})
		}
	}
}

func TestValueDifficulty(t *testing.T) {
	tests := []struct {
		cell     models.Cell
		expected float64
	}{
		{models.MissingCell, 0},
		{models.TextCell("abc"), 0},
		{models.TextCell("3.5"), 3.5},
		{models.TextCell(" 2 "), 2},
		{models.NumberCell("0.75"), 0.75},
		{models.TextCell(""), 0},
		{models.TextCell("NaN"), 0},
		{models.TextCell("-Inf"), 0},
	}

	for _, tt := range tests {
		got := Value(models.FieldDifficulty, tt.cell, ChapterCells{})
		require.IsType(t, float64(0), got, "cell %+v", tt.cell)
		assert.Equal(t, tt.expected, got, "cell %+v", tt.cell)
	}
}

func TestValueText(t *testing.T) {
	tests := []struct {
		cell     models.Cell
		expected string
	}{
		{models.MissingCell, ""},
		{models.TextCell(""), ""},
		{models.TextCell("  下列说法正确的是\n"), "下列说法正确的是"},
		{models.TextCell("　全角空格　"), "全角空格"},
		{models.NumberCell("9787574804616"), "9787574804616"},
	}

	for _, field := range []models.Field{models.FieldQuestion, models.FieldBookIsbn, models.FieldGrade} {
		for _, tt := range tests {
			assert.Equal(t, tt.expected, Value(field, tt.cell, ChapterCells{}), "%s %+v", field, tt.cell)
		}
	}
}

func TestValueChaptersUsesChapterCells(t *testing.T) {
	cells := ChapterCells{
		Chapter: models.TextCell("第八单元"),
		Section: models.TextCell("课题1"),
		Lesson:  models.TextCell("第1课时"),
	}

	got := Value(models.FieldChapters, models.TextCell("ignored"), cells)

	require.IsType(t, models.Chapter{}, got)
	ch := got.(models.Chapter)
	assert.Equal(t, "第八单元", ch.Text)
	require.Len(t, ch.Sub, 1)
	assert.Equal(t, "课题1", ch.Sub[0].Text)
}

func TestValueChaptersMissing(t *testing.T) {
	got := Value(models.FieldChapters, models.MissingCell, ChapterCells{})
	assert.Equal(t, models.EmptyChapter(), got)
}

func TestSplitLinesCountsNonEmptyLines(t *testing.T) {
	inputs := []string{
		"a\nb\nc",
		"\n\na\n",
		"  a  \n\t\nb",
		"only",
	}
	expected := []int{3, 1, 2, 1}

	for i, in := range inputs {
		lines := SplitLines(in)
		assert.Len(t, lines, expected[i], "input %q", in)
		for _, l := range lines {
			assert.NotEmpty(t, l)
		}
	}
}
