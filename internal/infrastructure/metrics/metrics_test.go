package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserve(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveRun(OutcomeFresh, 2*time.Millisecond)
	m.ObserveRun(OutcomeCached, 0)
	m.ObserveRun(OutcomeCached, 0)
	m.ObserveItems(2, 3, 1, 0)
	m.CacheError("get")

	assert.Equal(t, 1.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(OutcomeFresh)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.RunsTotal.WithLabelValues(OutcomeCached)))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.ItemsTotal.WithLabelValues("actions")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.CacheErrorsTotal.WithLabelValues("get")))
	assert.Equal(t, 1, testutil.CollectAndCount(m.Duration))
}

func TestNilMetricsAreSafe(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.ObserveRun(OutcomeFresh, time.Second)
		m.ObserveItems(1, 1, 1, 1)
		m.CacheError("set")
	})
}

func TestDefaultRegistersOnce(t *testing.T) {
	assert.Same(t, Default(), Default())
}
