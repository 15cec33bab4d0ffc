package taxlot

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter helps construct a JSON object with a specific field order.
// Its zero value is ready to use.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append marshals 'value' and appends it under 'key'. Fields appear in the
// object in call order.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	raw, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("failed to marshal field %q: %w", key, err)
		return w
	}
	fmt.Fprintf(&w.Buffer, "%q:%s,", key, raw)
	return w
}

// Optional is like Append but skips zero values entirely.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if value == nil || reflect.ValueOf(value).IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON returns the object built so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	inner := bytes.TrimSuffix(w.Bytes(), []byte(","))
	out := make([]byte, 0, len(inner)+2)
	out = append(out, '{')
	out = append(out, inner...)
	out = append(out, '}')
	return out, nil
}
