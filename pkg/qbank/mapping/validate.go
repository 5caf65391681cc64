package mapping

import (
	"errors"
	"fmt"
	"slices"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// ErrInvalidMapping is returned for mappings that fail validation.
var ErrInvalidMapping = errors.New("invalid field mapping")

// Validate checks a mapping document and reports every problem found.
func Validate(mf *File) error {
	if mf == nil {
		return fmt.Errorf("%w: mapping is nil", ErrInvalidMapping)
	}

	var errs []error
	if _, err := models.ParseVariant(string(mf.Variant)); err != nil {
		errs = append(errs, err)
	}
	if len(mf.Columns) == 0 {
		errs = append(errs, errors.New("no columns mapped"))
	}

	allowed := mf.Variant.Fields()
	seenColumns := make(map[string]struct{}, len(mf.Columns))
	claimedBy := make(map[models.Field]string)

	for i, c := range mf.Columns {
		if c.Name == "" {
			errs = append(errs, fmt.Errorf("column %d: empty column name", i+1))
			continue
		}
		if _, ok := seenColumns[c.Name]; ok {
			errs = append(errs, fmt.Errorf("duplicate column %q: list all of its targets in one entry", c.Name))
			continue
		}
		seenColumns[c.Name] = struct{}{}

		if len(c.Targets) == 0 {
			errs = append(errs, fmt.Errorf("column %q: no target field", c.Name))
			continue
		}

		for _, f := range c.Targets {
			if !slices.Contains(allowed, f) {
				errs = append(errs, fmt.Errorf("column %q: unknown target %q for %s", c.Name, f, mf.Variant))
				continue
			}
			if other, ok := claimedBy[f]; ok {
				if other == c.Name {
					errs = append(errs, fmt.Errorf("column %q: target %q listed twice", c.Name, f))
				} else {
					errs = append(errs, fmt.Errorf("target %q mapped from both %q and %q", f, other, c.Name))
				}
				continue
			}
			claimedBy[f] = c.Name
		}
	}

	_, hasChapters := claimedBy[models.FieldChapters]
	if !hasChapters {
		if mf.Variant == models.VariantCatalogue {
			errs = append(errs, errors.New("catalogue mapping needs a chapters column"))
		}
		for _, f := range []models.Field{models.FieldSection, models.FieldLesson} {
			if col, ok := claimedBy[f]; ok {
				errs = append(errs, fmt.Errorf("column %q: %s requires a chapters column", col, f))
			}
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %w", ErrInvalidMapping, errors.Join(errs...))
	}
	return nil
}
