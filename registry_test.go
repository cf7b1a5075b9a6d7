package dptx

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinCatalog(t *testing.T) {
	ids := IDs()
	for _, id := range []string{
		"21.001", "21.002", "21.100", "21.101", "21.102", "21.103", "21.104",
		"21.105", "21.106", "21.601", "21.1000", "21.1001", "21.1010",
	} {
		assert.Contains(t, ids, id)
	}

	st, ok := Lookup("21.001")
	require.True(t, ok)
	assert.Same(t, DptGeneralStatus, st)

	_, ok = Lookup("21.01")
	assert.False(t, ok)

	// Every subtype accepts "1" as its first flag.
	for id, st := range SubTypes() {
		tr, err := New(st)
		require.NoError(t, err, id)
		require.NoError(t, tr.SetText("1"), id)
		v, err := tr.Numeric()
		require.NoError(t, err, id)
		assert.Equal(t, 1, v, id)
	}
}

func TestRegister(t *testing.T) {
	first := MustSubtype("21.960", "First", "A")
	second := MustSubtype("21.960", "Second", "A", "B")

	Register(first)
	Register(second)
	Register(nil)

	st, ok := Lookup("21.960")
	require.True(t, ok)
	assert.Same(t, second, st)

	tr, err := NewByID("21.960")
	require.NoError(t, err)
	assert.NoError(t, tr.SetNumeric(3))
}

func TestSubTypesReturnsCopy(t *testing.T) {
	m := SubTypes()
	delete(m, "21.001")

	_, ok := Lookup("21.001")
	assert.True(t, ok)
	assert.Contains(t, SubTypes(), "21.001")
}

func TestRegistryConcurrentReaders(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				st, ok := Lookup("21.002")
				if !ok || st.Upper() != 7 {
					t.Errorf("lookup failed")
					return
				}
				_ = IDs()
			}
		}()
	}
	Register(MustSubtype("21.961", "Concurrent", "A"))
	wg.Wait()
}
