package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

func chapter(text string, sections ...models.Chapter) models.Chapter {
	c := models.NewChapter(models.NodeChapter, text)
	c.Sub = append(c.Sub, sections...)
	return c
}

func section(text string, lessons ...string) models.Chapter {
	s := models.NewChapter(models.NodeSection, text)
	for _, l := range lessons {
		s.Sub = append(s.Sub, models.NewChapter(models.NodeLesson, l))
	}
	return s
}

func TestMergeChaptersSections(t *testing.T) {
	forest := MergeChapters([]models.Chapter{
		chapter("Unit1", section("A")),
		chapter("Unit1", section("A"), section("B")),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "Unit1", forest[0].Text)
	assert.Equal(t, []string{"A", "B"}, texts(forest[0].Sub))
}

func TestMergeChaptersLessons(t *testing.T) {
	forest := MergeChapters([]models.Chapter{
		chapter("C1", section("S1", "L1", "L2")),
		chapter("C2"),
		chapter("C1", section("S1", "L3", "L1")),
		chapter("C1", section("S2", "L9")),
	})

	require.Len(t, forest, 2)
	assert.Equal(t, []string{"C1", "C2"}, texts(forest))
	assert.Equal(t, []string{"S1", "S2"}, texts(forest[0].Sub))
	assert.Equal(t, []string{"L1", "L2", "L3"}, texts(forest[0].Sub[0].Sub))
	assert.Equal(t, []string{"L9"}, texts(forest[0].Sub[1].Sub))
	assert.Empty(t, forest[1].Sub)
}

func TestMergeChaptersSkipsEmpty(t *testing.T) {
	forest := MergeChapters([]models.Chapter{
		models.EmptyChapter(),
		chapter("C1"),
		chapter("", section("S")),
	})

	require.Len(t, forest, 1)
	assert.Equal(t, "C1", forest[0].Text)
}

func TestMergeChaptersIdempotent(t *testing.T) {
	forest := MergeChapters([]models.Chapter{
		chapter("C1", section("S1", "L1", "L1")),
		chapter("C2", section("S2", "L2")),
		chapter("C1", section("S3")),
	})

	doubled := append(append([]models.Chapter{}, forest...), forest...)
	assert.Equal(t, forest, MergeChapters(doubled))
	assert.Equal(t, forest, MergeChapters(forest))
}

func TestMergeChaptersDoesNotMutateInput(t *testing.T) {
	first := chapter("C1", section("S1", "L1"))
	input := []models.Chapter{first, chapter("C1", section("S1", "L2"), section("S2"))}

	MergeChapters(input)

	assert.Len(t, input[0].Sub, 1)
	assert.Equal(t, []string{"L1"}, texts(input[0].Sub[0].Sub))
}

func TestMergeCatalogueRows(t *testing.T) {
	rows := []ChapterCells{
		{Chapter: models.TextCell("C1"), Section: models.TextCell("S1"), Lesson: models.TextCell("L1\nL2")},
		{Chapter: models.TextCell("C1"), Section: models.TextCell("S1"), Lesson: models.TextCell("L3")},
	}

	var built []models.Chapter
	for _, r := range rows {
		built = append(built, BuildCatalogueChapter(r))
	}
	forest := MergeChapters(built)

	require.Len(t, forest, 1)
	require.Len(t, forest[0].Sub, 1)
	assert.Equal(t, "S1", forest[0].Sub[0].Text)
	assert.Equal(t, []string{"L1", "L2", "L3"}, texts(forest[0].Sub[0].Sub))
}
