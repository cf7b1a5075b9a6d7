package codec

import (
	"bytes"
	"fmt"
	"reflect"

	"github.com/BurntSushi/toml"
)

// TOML is a TOML codec backed by github.com/BurntSushi/toml.
//
// TOML documents are tables, so top-level values must be structs or maps.
type TOML struct{}

// Marshal encodes the value to TOML.
func (TOML) Marshal(v any) ([]byte, error) {
	switch k := reflect.Indirect(reflect.ValueOf(v)).Kind(); k {
	case reflect.Struct, reflect.Map:
	default:
		return nil, fmt.Errorf("codec: toml cannot encode top-level %s", k)
	}

	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Unmarshal decodes the TOML data into v.
func (TOML) Unmarshal(data []byte, v any) error { return toml.Unmarshal(data, v) }

// Name returns the unique name of the codec ("toml").
func (TOML) Name() string { return "toml" }
