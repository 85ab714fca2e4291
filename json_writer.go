package fundview

import (
	"bytes"
	"encoding/json"
	"fmt"
	"reflect"
)

// jsonObjectWriter writes a JSON object whose keys keep their insertion order,
// as dates and tickers must in the dashboard datasets.
// Its zero value is an empty object.
type jsonObjectWriter struct {
	bytes.Buffer
	err error
}

// Append writes a key and its value. A non-finite float64 is written as null,
// the dashboard reads it as a missing price. Other values go through json.Marshal,
// the first error is kept and returned by MarshalJSON.
func (w *jsonObjectWriter) Append(key string, value any) *jsonObjectWriter {
	if w.err != nil {
		return w
	}
	if f, ok := value.(float64); ok && !isFinite(f) {
		value = nil
	}

	v, err := json.Marshal(value)
	if err != nil {
		w.err = fmt.Errorf("cannot encode %q: %w", key, err)
		return w
	}
	k, _ := json.Marshal(key)
	if w.Len() > 0 {
		w.WriteByte(',')
	}
	w.Write(k)
	w.WriteByte(':')
	w.Write(v)
	return w
}

// Optional is like Append but skips zero values.
func (w *jsonObjectWriter) Optional(key string, value any) *jsonObjectWriter {
	if v := reflect.ValueOf(value); !v.IsValid() || v.IsZero() {
		return w
	}
	return w.Append(key, value)
}

// MarshalJSON returns the object written so far.
func (w *jsonObjectWriter) MarshalJSON() ([]byte, error) {
	if w.err != nil {
		return nil, w.err
	}
	res := make([]byte, 0, w.Len()+2)
	res = append(res, '{')
	res = append(res, w.Bytes()...)
	return append(res, '}'), nil
}
