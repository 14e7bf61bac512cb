package metrics_test

import (
	"errors"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netex/metrics"
)

func TestRegister(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, metrics.Register(reg))

	err := metrics.Register(reg)
	var already prometheus.AlreadyRegisteredError
	assert.True(t, errors.As(err, &already))

	metrics.TasksTotal.WithLabelValues("trustrank", metrics.StatusOK).Inc()
	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.TasksTotal.WithLabelValues("trustrank", metrics.StatusOK)))

	metrics.GraphNodes.Set(42)
	assert.Equal(t, 42.0, testutil.ToFloat64(metrics.GraphNodes))
}
