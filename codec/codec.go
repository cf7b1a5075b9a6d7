// Package codec provides the serialization formats used for subtype catalogs
// and translated values.
//
// Codecs are selected by stable name, or by file extension when loading
// catalog files.
package codec

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Codec encodes/decodes values.
// Implementations must be safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, v any) error
	Name() string
}

// ByName returns a built-in codec by its stable name.
func ByName(name string) (Codec, bool) {
	switch name {
	case "json":
		return JSON{}, true
	case "go-json":
		return GoJSON{}, true
	case "yaml":
		return YAML{}, true
	case "toml":
		return TOML{}, true
	default:
		return nil, false
	}
}

// ByExtension returns the codec for a file name based on its extension.
// JSON files are decoded with Default.
func ByExtension(path string) (Codec, bool) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return Default, true
	case ".yaml", ".yml":
		return YAML{}, true
	case ".toml":
		return TOML{}, true
	default:
		return nil, false
	}
}

// Names returns the names accepted by ByName.
func Names() []string {
	return []string{"json", "go-json", "yaml", "toml"}
}

// MustMarshal is like Marshal but panics on error. A nil codec selects
// Default. It is intended for tests and fixtures.
func MustMarshal(c Codec, v any) []byte {
	if c == nil {
		c = Default
	}
	b, err := c.Marshal(v)
	if err != nil {
		panic(fmt.Errorf("codec %s marshal failed: %w", c.Name(), err))
	}
	return b
}
