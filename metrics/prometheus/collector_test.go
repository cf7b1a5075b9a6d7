package prometheus

import (
	"testing"

	"github.com/hupe1980/dptx"
	prom "github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCollectorRecordsOperations(t *testing.T) {
	reg := prom.NewRegistry()
	c, err := NewCollector(reg, "test")
	require.NoError(t, err)

	tr, err := dptx.New(dptx.DptGeneralStatus, dptx.WithMetricsCollector(c))
	require.NoError(t, err)

	require.NoError(t, tr.SetTexts("Overridden", "0x08", "OutOfService"))
	require.Error(t, tr.SetNumeric(32))
	_, err = tr.Numeric()
	require.NoError(t, err)

	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("21.001", "set_text", "ok")))
	assert.Equal(t, 3.0, testutil.ToFloat64(c.items.WithLabelValues("21.001", "set_text")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("21.001", "set_numeric", "error")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.operations.WithLabelValues("21.001", "numeric", "ok")))
	assert.Equal(t, 3, testutil.CollectAndCount(c.latency))
}

func TestNewCollectorDuplicateRegistration(t *testing.T) {
	reg := prom.NewRegistry()
	_, err := NewCollector(reg, "dup")
	require.NoError(t, err)

	_, err = NewCollector(reg, "dup")
	assert.Error(t, err)
}
