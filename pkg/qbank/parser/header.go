package parser

import (
	"fmt"
	"strings"
)

// findDataBounds finds the bounding box of non-empty cells.
func findDataBounds(rows [][]string) (minRow, maxRow, minCol, maxCol int) {
	minRow, maxRow = -1, -1
	minCol, maxCol = -1, -1

	for rowIdx, row := range rows {
		for colIdx, cell := range row {
			if cell != "" {
				if minRow < 0 || rowIdx < minRow {
					minRow = rowIdx
				}
				if maxRow < 0 || rowIdx > maxRow {
					maxRow = rowIdx
				}
				if minCol < 0 || colIdx < minCol {
					minCol = colIdx
				}
				if maxCol < 0 || colIdx > maxCol {
					maxCol = colIdx
				}
			}
		}
	}

	return
}

// buildHeader names width columns from the header row.
// Blank names become "Unnamed: N" (0-based column index) and repeated names
// get ".1", ".2", ... suffixes in order of appearance.
func buildHeader(row []string, width int) []string {
	header := make([]string, width)
	used := make(map[string]int, width)

	for i := 0; i < width; i++ {
		name := ""
		if i < len(row) {
			name = row[i]
		}
		if strings.TrimSpace(name) == "" {
			name = fmt.Sprintf("Unnamed: %d", i)
		}

		base := name
		for n := used[base]; ; n++ {
			if n > 0 {
				name = fmt.Sprintf("%s.%d", base, n)
			}
			if _, taken := used[name]; !taken {
				used[base] = n + 1
				break
			}
		}
		used[name] = 1
		header[i] = name
	}

	return header
}

// blankRow reports whether every cell of row is empty.
func blankRow(row []string) bool {
	for _, c := range row {
		if c != "" {
			return false
		}
	}
	return true
}
