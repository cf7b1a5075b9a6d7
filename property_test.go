package dptx_test

import (
	"fmt"
	"testing"

	"github.com/hupe1980/dptx"
	"github.com/hupe1980/dptx/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomSubtypes(t *testing.T) {
	rng := testutil.NewRNG(4711)

	for i := 0; i < 64; i++ {
		st := rng.Subtype(fmt.Sprintf("21.%d", 5000+i))
		tr, err := dptx.New(st)
		require.NoError(t, err)

		t.Run(st.ID(), func(t *testing.T) {
			flags, mask := rng.FlagSet(st)
			require.NoError(t, tr.SetFlags(flags...))
			got, err := tr.Flags()
			require.NoError(t, err)
			assert.ElementsMatch(t, flags, got)

			require.NoError(t, tr.SetText(testutil.BitSequence(mask, st.Len())))
			v, err := tr.Numeric()
			require.NoError(t, err)
			assert.Equal(t, mask, v)

			raw := rng.Bytes(st, 8)
			require.NoError(t, tr.SetData(raw, 0))
			values, err := tr.AllValues()
			require.NoError(t, err)
			require.NoError(t, tr.SetTexts(values...))
			assert.Equal(t, raw, tr.Data())

			assert.Error(t, tr.SetNumeric(st.Upper()+1))
			assert.Error(t, tr.SetNumeric(-1))
		})
	}
}
