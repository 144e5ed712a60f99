//go:build (linux || darwin || windows) && (amd64 || arm64)

package json

import "github.com/bytedance/sonic"

var api = frozen(true)

// frozen mirrors sonic.ConfigStd with HTML escaping switchable.
func frozen(escapeHTML bool) sonic.API {
	return sonic.Config{
		EscapeHTML:       escapeHTML,
		SortMapKeys:      true,
		CompactMarshaler: true,
		CopyString:       true,
		ValidateString:   true,
	}.Froze()
}

// Marshal encodes v as compact JSON.
func Marshal(v any) ([]byte, error) {
	return api.Marshal(v)
}

// Unmarshal decodes data into v.
func Unmarshal(data []byte, v any) error {
	return api.Unmarshal(data, v)
}

// SetEscapeHTML controls whether Marshal escapes <, > and & inside strings.
// It is on by default; patterns read better with it off since named groups
// are spelled (?P<name>...).
func SetEscapeHTML(on bool) {
	api = frozen(on)
}
