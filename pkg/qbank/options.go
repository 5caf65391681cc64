// Package qbank converts question-bank spreadsheets into nested JSON.
package qbank

import (
	"github.com/ukaji3/qbank-go/pkg/qbank/mapping"
	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// Variant selects the conversion output.
type Variant = models.Variant

const (
	// VariantQuestions converts each row into one question record.
	VariantQuestions = models.VariantQuestions
	// VariantCatalogue converts all rows into one merged chapter forest.
	VariantCatalogue = models.VariantCatalogue
)

// DefaultSheet is the sheet holding the final annotation results.
const DefaultSheet = "最终结果"

// Options configures a conversion.
type Options struct {
	// Variant specifies the output shape (questions, catalogue).
	Variant Variant
	// Sheet names the sheet to read. Falls back to the mapping's sheet, then DefaultSheet.
	Sheet string
	// Mapping maps columns to fields. If nil, the built-in mapping for Variant is used.
	Mapping *mapping.Mapping
	// Encoding is the text encoding of CSV input (utf-8, gbk, gb18030).
	Encoding string
}

// DefaultOptions returns default conversion options.
func DefaultOptions() Options {
	return Options{
		Variant: VariantQuestions,
	}
}

// ResolveSheet returns the sheet to read.
func (o Options) ResolveSheet() string {
	if o.Sheet != "" {
		return o.Sheet
	}
	if o.Mapping != nil && o.Mapping.Sheet() != "" {
		return o.Mapping.Sheet()
	}
	return DefaultSheet
}

// ResolveMapping returns the mapping to apply.
func (o Options) ResolveMapping() (*mapping.Mapping, error) {
	if o.Mapping != nil {
		return o.Mapping, nil
	}
	if o.Variant == "" {
		return mapping.Default(VariantQuestions)
	}
	return mapping.Default(o.Variant)
}
