// Package output serializes conversion results.
package output

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

// ToJSON serializes v as UTF-8 JSON. Non-ASCII text and HTML characters are
// written literally. Pretty output is indented with two spaces. Records are
// written as objects with keys in assembly order.
func ToJSON(v any, pretty bool) ([]byte, error) {
	switch x := v.(type) {
	case []models.Record:
		return recordsToJSON(x, pretty)
	case models.Record:
		w := &recordWriter{pretty: pretty}
		if err := w.record(x, 0); err != nil {
			return nil, err
		}
		return w.buf.Bytes(), nil
	}
	return encode(v, pretty)
}

// encode runs v through a goccy encoder without HTML escaping.
func encode(v any, pretty bool) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", indent)
	}
	if err := enc.Encode(v); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// ResultToJSON serializes the payload of r: the record list for the questions
// variant, the chapter forest for the catalogue variant.
func ResultToJSON(r *models.Result, pretty bool) ([]byte, error) {
	return ToJSON(r.Payload(), pretty)
}

// WriteResult writes the payload of r as pretty JSON to path.
func WriteResult(r *models.Result, path string) error {
	data, err := ResultToJSON(r, true)
	if err != nil {
		return fmt.Errorf("serialization failed: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// BaseName returns the file name of path without directory and final extension.
func BaseName(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// FileName returns the output file name for an input path: its base name with
// a .json extension.
func FileName(inputPath string) string {
	return BaseName(inputPath) + ".json"
}
