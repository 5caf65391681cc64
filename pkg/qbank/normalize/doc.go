// Package normalize turns raw cells into typed output values and builds the
// chapter/section/lesson tree.
//
// Every function here is pure: malformed input degrades to a default value and
// never produces an error.
//
// # Field rules
//
//	choice, knowledge   missing -> []        else split on "\n", trim, drop blanks
//	difficulty          missing -> 0         else float, unparsable -> 0
//	chapters            built from the row's chapter, section and lesson cells
//	anything else       missing -> ""        else trimmed text
//
// # Chapter trees
//
// BuildRowChapter produces the per-row shape (at most one section holding at most
// one lesson). BuildCatalogueChapter splits the lesson cell on newlines.
// MergeChapters folds many catalogue chapters into a forest keyed by heading text.
package normalize
