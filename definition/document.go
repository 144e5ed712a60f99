package definition

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"gopkg.in/yaml.v3"

	"go.dw1.io/rex/internal/json"
)

// Format is the encoding of a definition document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Document is a decoded definition file.
type Document struct {
	Patterns []Entry `json:"patterns" yaml:"patterns"`
}

// Entry is one named pattern of a Document.
type Entry struct {
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description,omitempty" yaml:"description,omitempty"`
	Pattern     Node   `json:"pattern" yaml:"pattern"`
}

// FormatFromPath picks the Format from the extension of path.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrFormat, path)
	}
}

// Parse decodes data as a document of the given format and checks that every
// entry has a unique name.
func Parse(data []byte, format Format) (*Document, error) {
	doc := new(Document)

	switch format {
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(doc); err != nil && !errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("decode yaml: %w", err)
		}
	case FormatJSON:
		if len(bytes.TrimSpace(data)) == 0 {
			break
		}
		if err := json.Unmarshal(data, doc); err != nil {
			return nil, fmt.Errorf("decode json: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %q", ErrFormat, format)
	}

	if err := doc.validate(); err != nil {
		return nil, err
	}

	return doc, nil
}

// Load reads and parses the document at path on fs. The format is taken from
// the file extension.
func Load(fs afero.Fs, path string) (*Document, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}

	data, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("read definitions: %w", err)
	}

	doc, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return doc, nil
}

// Names returns the entry names in document order.
func (d *Document) Names() []string {
	names := make([]string, len(d.Patterns))
	for i, e := range d.Patterns {
		names[i] = e.Name
	}
	return names
}

func (d *Document) validate() error {
	seen := make(map[string]struct{}, len(d.Patterns))
	for i, e := range d.Patterns {
		if e.Name == "" {
			return fmt.Errorf("patterns[%d]: %w", i, ErrMissingName)
		}
		if _, dup := seen[e.Name]; dup {
			return fmt.Errorf("patterns[%d]: %w: %q", i, ErrDuplicateName, e.Name)
		}
		seen[e.Name] = struct{}{}
	}

	return nil
}

func (d *Document) entry(name string) (Entry, bool) {
	for _, e := range d.Patterns {
		if e.Name == name {
			return e, true
		}
	}
	return Entry{}, false
}
