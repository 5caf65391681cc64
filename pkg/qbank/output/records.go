package output

import (
	"bytes"
	"math"
	"strconv"
	"strings"

	"github.com/ukaji3/qbank-go/pkg/qbank/models"
)

const indent = "  "

// recordWriter writes records as JSON objects with keys in assembly order.
// Each value goes through encode on its own and is re-indented to its depth.
type recordWriter struct {
	buf    bytes.Buffer
	pretty bool
}

func recordsToJSON(records []models.Record, pretty bool) ([]byte, error) {
	w := &recordWriter{pretty: pretty}
	if err := w.records(records); err != nil {
		return nil, err
	}
	return w.buf.Bytes(), nil
}

func (w *recordWriter) records(records []models.Record) error {
	if len(records) == 0 {
		w.buf.WriteString("[]")
		return nil
	}
	w.buf.WriteByte('[')
	for i, r := range records {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.newline(1)
		if err := w.record(r, 1); err != nil {
			return err
		}
	}
	w.newline(0)
	w.buf.WriteByte(']')
	return nil
}

func (w *recordWriter) record(r models.Record, depth int) error {
	if r.Len() == 0 {
		w.buf.WriteString("{}")
		return nil
	}
	w.buf.WriteByte('{')
	for i, fv := range r.Fields {
		if i > 0 {
			w.buf.WriteByte(',')
		}
		w.newline(depth + 1)
		if err := w.value(string(fv.Field), depth+1); err != nil {
			return err
		}
		w.buf.WriteByte(':')
		if w.pretty {
			w.buf.WriteByte(' ')
		}
		if err := w.value(fv.Value, depth+1); err != nil {
			return err
		}
	}
	w.newline(depth)
	w.buf.WriteByte('}')
	return nil
}

func (w *recordWriter) value(v any, depth int) error {
	if f, ok := v.(float64); ok {
		w.buf.WriteString(formatFloat(f))
		return nil
	}

	data, err := encode(v, w.pretty)
	if err != nil {
		return err
	}
	if w.pretty && depth > 0 {
		// Encoded strings never hold a raw newline, so every one is a line break.
		pad := append([]byte("\n"), bytes.Repeat([]byte(indent), depth)...)
		data = bytes.ReplaceAll(data, []byte("\n"), pad)
	}
	w.buf.Write(data)
	return nil
}

func (w *recordWriter) newline(depth int) {
	if !w.pretty {
		return
	}
	w.buf.WriteByte('\n')
	for i := 0; i < depth; i++ {
		w.buf.WriteString(indent)
	}
}

// formatFloat writes f so that whole numbers keep a fractional part (0.0, 3.0).
// NaN and Inf have no JSON form and are written as 0.0.
func formatFloat(f float64) string {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return "0.0"
	}
	if abs := math.Abs(f); abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'g', -1, 64)
	}
	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
