package codec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type record struct {
	ID    string   `json:"id" yaml:"id" toml:"id"`
	Value int      `json:"value" yaml:"value" toml:"value"`
	Flags []string `json:"flags" yaml:"flags" toml:"flags"`
}

func TestByName(t *testing.T) {
	for _, name := range Names() {
		t.Run(name, func(t *testing.T) {
			c, ok := ByName(name)
			require.True(t, ok)
			assert.Equal(t, name, c.Name())
		})
	}

	_, ok := ByName("xml")
	assert.False(t, ok)
}

func TestByExtension(t *testing.T) {
	tests := []struct {
		path string
		name string
		ok   bool
	}{
		{"catalog.json", Default.Name(), true},
		{"catalog.YAML", "yaml", true},
		{"dir/catalog.yml", "yaml", true},
		{"catalog.toml", "toml", true},
		{"catalog.txt", "", false},
		{"catalog", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			c, ok := ByExtension(tt.path)
			require.Equal(t, tt.ok, ok)
			if ok {
				assert.Equal(t, tt.name, c.Name())
			}
		})
	}
}

func TestTOMLRequiresTable(t *testing.T) {
	for _, v := range []any{[]string{"a", "b"}, 13, "21.001", nil} {
		_, err := TOML{}.Marshal(v)
		assert.Error(t, err, "%T", v)
	}

	data, err := TOML{}.Marshal(record{ID: "21.001", Value: 13})
	require.NoError(t, err)
	assert.Contains(t, string(data), `id = "21.001"`)

	data, err = TOML{}.Marshal(&record{ID: "21.002", Value: 1, Flags: []string{"Fault"}})
	require.NoError(t, err)
	var got record
	require.NoError(t, TOML{}.Unmarshal(data, &got))
	assert.Equal(t, record{ID: "21.002", Value: 1, Flags: []string{"Fault"}}, got)

	_, err = TOML{}.Marshal(map[string]int{"value": 3})
	assert.NoError(t, err)
}

func TestMustMarshalPanicsOnError(t *testing.T) {
	assert.Panics(t, func() {
		MustMarshal(JSON{}, make(chan int))
	})
}
