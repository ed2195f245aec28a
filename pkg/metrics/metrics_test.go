package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetrics_Loads(t *testing.T) {
	m := New()

	m.LoadStarted()
	m.LoadStarted()
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loadsInFlight))

	m.LoadFinished(time.Now(), nil, 7)
	m.LoadFinished(time.Now(), errors.New("timeout"), 0)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.loadsInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues(ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.loads.WithLabelValues(ResultFailure)))
	assert.Equal(t, 7.0, testutil.ToFloat64(m.snapshotVersion))
}

func TestMetrics_Mutation(t *testing.T) {
	m := New()
	m.Mutation("requests", "create", nil)
	m.Mutation("requests", "create", errors.New("422"))
	m.Mutation("requests", "create", nil)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.mutations.WithLabelValues("requests", "create", ResultSuccess)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.mutations.WithLabelValues("requests", "create", ResultFailure)))
}

func TestMetrics_NilReceiver(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.LoadStarted()
		m.LoadFinished(time.Now(), nil, 1)
		m.Mutation("teams", "delete", nil)
	})
}
