package dptx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSubtype(t *testing.T) {
	st, err := NewSubtype("21.950", "Test Flags", "A", "B", "C")
	require.NoError(t, err)
	assert.Equal(t, "21.950", st.ID())
	assert.Equal(t, "Test Flags", st.Description())
	assert.Equal(t, "", st.Unit())
	assert.Equal(t, 3, st.Len())
	assert.Equal(t, 0, st.Lower())
	assert.Equal(t, 7, st.Upper())
	assert.Equal(t, "21.950: Test Flags, values from 0 to 7", st.String())

	flags := st.Flags()
	flags[0] = "Z"
	assert.Equal(t, []string{"A", "B", "C"}, st.Flags(), "flags must be copied out")

	in := []string{"A", "B"}
	st, err = NewSubtype("21.951", "", in...)
	require.NoError(t, err)
	in[0] = "Z"
	assert.Equal(t, []string{"A", "B"}, st.Flags(), "flags must be copied in")
}

func TestNewSubtypeInvalid(t *testing.T) {
	tests := []struct {
		name  string
		id    string
		flags []string
	}{
		{"empty id", " ", []string{"A"}},
		{"no flags", "21.952", nil},
		{"nine flags", "21.953", []string{"A", "B", "C", "D", "E", "F", "G", "H", "I"}},
		{"empty flag", "21.954", []string{"A", ""}},
		{"duplicate flag", "21.955", []string{"A", "B", "A"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewSubtype(tt.id, "x", tt.flags...)
			var unsupported *ErrUnsupportedSubtype
			require.True(t, errors.As(err, &unsupported))
			assert.Equal(t, tt.id, unsupported.ID)
		})
	}

	assert.Panics(t, func() { MustSubtype("21.956", "x") })
}

func TestMaxValue(t *testing.T) {
	for n, want := range []int{0, 1, 3, 7, 15, 31, 63, 127, 255} {
		assert.Equal(t, want, MaxValue(n))
	}
	assert.Equal(t, 255, DptChannelActivation8.Upper())
	assert.Equal(t, 1, DptForcingSignalCool.Upper())
}

func TestFlagIndex(t *testing.T) {
	i, ok := DptGeneralStatus.FlagIndex("InAlarm")
	assert.True(t, ok)
	assert.Equal(t, 3, i)

	_, ok = DptGeneralStatus.FlagIndex("inalarm")
	assert.False(t, ok)
	_, ok = DptGeneralStatus.FlagIndex("")
	assert.False(t, ok)
}

func TestFlagName(t *testing.T) {
	tests := []struct {
		bit  int
		name string
		ok   bool
	}{
		{1, "OutOfService", true},
		{2, "Fault", true},
		{16, "AlarmUnAck", true},
		{0, "", false},
		{3, "", false},
		{32, "", false},
		{-8, "", false},
	}
	for _, tt := range tests {
		name, ok := DptGeneralStatus.FlagName(tt.bit)
		assert.Equal(t, tt.ok, ok, "bit %d", tt.bit)
		assert.Equal(t, tt.name, name, "bit %d", tt.bit)
	}
}

func TestDescriptionOf(t *testing.T) {
	assert.Equal(t, "General Status", DescriptionOf("GeneralStatus"))
	assert.Equal(t, "Device Control", DescriptionOf("DeviceControl"))
	assert.Equal(t, "Do A And Knx Sn", DescriptionOf("DoAAndKnxSn"))
	assert.Equal(t, "Fault", DescriptionOf("Fault"))
	assert.Equal(t, "", DescriptionOf(""))
}

func TestTypedElements(t *testing.T) {
	assert.Equal(t, 1, OutOfService.Value())
	assert.Equal(t, 16, AlarmUnAck.Value())
	assert.Equal(t, "InAlarm", InAlarm.String())
	assert.Equal(t, 4, VerifyMode.Value())
	assert.Equal(t, "OwnIndAddress", OwnIndAddress.String())
	assert.Equal(t, "GeneralStatus(?)", GeneralStatus(7).String())
}
