package normalize

import "github.com/ukaji3/qbank-go/pkg/qbank/models"

// BuildRowChapter builds the per-row chapter node. The section holds at most one
// lesson carrying the whole trimmed lesson text.
func BuildRowChapter(cells ChapterCells) models.Chapter {
	return buildChapter(cells, func(lesson string) []string {
		return []string{lesson}
	})
}

// BuildCatalogueChapter builds a chapter node for the catalogue. The lesson cell
// is split on newlines, one lesson per non-empty line.
func BuildCatalogueChapter(cells ChapterCells) models.Chapter {
	return buildChapter(cells, SplitLines)
}

// buildChapter attaches a section only when the section text is non-empty;
// lesson text without a section is dropped.
func buildChapter(cells ChapterCells, lessons func(string) []string) models.Chapter {
	chapter := models.NewChapter(models.NodeChapter, text(cells.Chapter))

	sectionText := text(cells.Section)
	if sectionText == "" {
		return chapter
	}
	section := models.NewChapter(models.NodeSection, sectionText)

	if lessonText := text(cells.Lesson); lessonText != "" {
		for _, l := range lessons(lessonText) {
			section.Sub = append(section.Sub, models.NewChapter(models.NodeLesson, l))
		}
	}

	chapter.Sub = append(chapter.Sub, section)
	return chapter
}
