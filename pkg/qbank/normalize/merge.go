package normalize

import "github.com/ukaji3/qbank-go/pkg/qbank/models"

// MergeChapters folds chapters into a forest with unique chapter texts.
//
// The first node seen for a text is kept; later nodes with the same text
// contribute sections that are not yet present, and lessons missing from
// sections that are. Order of first appearance is preserved at every level.
// Chapters with empty text are ignored. The input is not modified.
func MergeChapters(chapters []models.Chapter) []models.Chapter {
	forest := make([]models.Chapter, 0, len(chapters))
	index := make(map[string]int, len(chapters))

	for _, chapter := range chapters {
		if chapter.IsEmpty() {
			continue
		}

		i, exists := index[chapter.Text]
		if !exists {
			index[chapter.Text] = len(forest)
			forest = append(forest, cloneChapter(chapter))
			continue
		}

		existing := &forest[i]
		for _, section := range chapter.Sub {
			j := indexOf(existing.Sub, section.Text)
			if j < 0 {
				existing.Sub = append(existing.Sub, cloneChapter(section))
				continue
			}

			target := &existing.Sub[j]
			for _, lesson := range section.Sub {
				if indexOf(target.Sub, lesson.Text) < 0 {
					target.Sub = append(target.Sub, cloneChapter(lesson))
				}
			}
		}
	}

	return forest
}

// indexOf returns the position of the first node with the given text, or -1.
func indexOf(nodes []models.Chapter, text string) int {
	for i := range nodes {
		if nodes[i].Text == text {
			return i
		}
	}
	return -1
}

// cloneChapter deep-copies a node so merging never writes into caller slices.
func cloneChapter(c models.Chapter) models.Chapter {
	out := models.NewChapter(c.Type, c.Text)
	for _, sub := range c.Sub {
		out.Sub = append(out.Sub, cloneChapter(sub))
	}
	return out
}
