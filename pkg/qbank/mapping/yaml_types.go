package mapping

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// Targets is a list of output fields that accepts a single scalar in YAML.
type Targets []models.Field

// UnmarshalYAML accepts either a single field name or a sequence of names.
func (t *Targets) UnmarshalYAML(node *yaml.Node) error {
	switch node.Kind {
	case yaml.ScalarNode:
		var s string
		if err := node.Decode(&s); err != nil {
			return err
		}
		if s == "" {
			*t = Targets{}
		} else {
			*t = Targets{models.Field(s)}
		}
		return nil

	case yaml.SequenceNode:
		var arr []string
		if err := node.Decode(&arr); err != nil {
			return err
		}
		out := make(Targets, 0, len(arr))
		for _, s := range arr {
			out = append(out, models.Field(s))
		}
		*t = out
		return nil

	default:
		return fmt.Errorf("line %d: expected field name or list of field names", node.Line)
	}
}

// MarshalYAML writes a single target as a scalar and several as a sequence.
func (t Targets) MarshalYAML() (any, error) {
	if len(t) == 1 {
		return string(t[0]), nil
	}
	out := make([]string, 0, len(t))
	for _, f := range t {
		out = append(out, string(f))
	}
	return out, nil
}
