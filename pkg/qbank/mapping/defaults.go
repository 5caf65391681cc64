package mapping

import (
	"embed"
	"fmt"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

//go:embed defaults/*.yaml
var defaultFiles embed.FS

// Default returns the built-in mapping for variant, matching the annotated
// headers of the standard question-bank template.
func Default(variant models.Variant) (*Mapping, error) {
	if _, err := models.ParseVariant(string(variant)); err != nil {
		return nil, err
	}

	data, err := defaultFiles.ReadFile("defaults/" + string(variant) + ".yaml")
	if err != nil {
		return nil, fmt.Errorf("no default mapping for %s: %w", variant, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, err
	}
	return FromFile(mf)
}
