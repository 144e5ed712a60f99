//go:build !((linux || darwin || windows) && (amd64 || arm64))

package json

import (
	"bytes"
	stdjson "encoding/json"
)

var escapeHTML = true

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	var buf bytes.Buffer
	enc := stdjson.NewEncoder(&buf)
	enc.SetEscapeHTML(escapeHTML)
	if err := enc.Encode(v); err != nil {
		return nil, err
	}

	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return stdjson.Unmarshal(data, v)
}

// SetEscapeHTML controls whether Marshal escapes <, > and & inside strings.
func SetEscapeHTML(on bool) {
	escapeHTML = on
}
