package models

import "fmt"

// Variant selects the shape of the conversion output.
type Variant string

const (
	// VariantQuestions emits one record per row.
	VariantQuestions Variant = "questions"
	// VariantCatalogue emits a merged chapter forest.
	VariantCatalogue Variant = "catalogue"
)

// ParseVariant parses a variant name.
func ParseVariant(s string) (Variant, error) {
	switch Variant(s) {
	case VariantQuestions, VariantCatalogue:
		return Variant(s), nil
	default:
		return "", fmt.Errorf("invalid variant: %q (must be questions or catalogue)", s)
	}
}

// Fields returns the target fields accepted by v.
func (v Variant) Fields() []Field {
	if v == VariantCatalogue {
		return CatalogueFields
	}
	return QuestionFields
}
