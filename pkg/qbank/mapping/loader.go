package mapping

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const currentVersion = "1"

// LoadFile reads, parses and validates the mapping file at path.
func LoadFile(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read mapping file %s: %w", path, err)
	}

	mf, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	m, err := FromFile(mf)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse parses YAML data into a File without validating it.
func Parse(data []byte) (*File, error) {
	var mf File

	if err := yaml.Unmarshal(data, &mf); err != nil {
		return nil, fmt.Errorf("failed to parse mapping YAML: %w", err)
	}

	applyDefaults(&mf)

	return &mf, nil
}

// applyDefaults fills in default values for optional fields.
func applyDefaults(mf *File) {
	if mf.Version == "" {
		mf.Version = currentVersion
	}
}

// Marshal serializes a File to YAML.
func Marshal(mf *File) ([]byte, error) {
	return yaml.Marshal(mf)
}

// File returns the mapping as a document suitable for Marshal.
func (m *Mapping) File() *File {
	return &File{
		Version: currentVersion,
		Variant: m.variant,
		Sheet:   m.sheet,
		Columns: m.Columns(),
	}
}
