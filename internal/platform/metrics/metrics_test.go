package metrics

import (
	"errors"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestCounters(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.IncrementRecordsCreated("member")
	m.IncrementRecordsCreated("member")
	m.IncrementPermissionDenied("comment")
	m.AddRemindersSent("dd_overdue", 3)
	m.AddRemindersSent("dd_overdue", 0)

	assert.Equal(t, 2.0, testutil.ToFloat64(m.RecordsCreated.WithLabelValues("member")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.PermissionDenied.WithLabelValues("comment")))
	assert.Equal(t, 3.0, testutil.ToFloat64(m.RemindersSent.WithLabelValues("dd_overdue")))
}

func TestObserveReminderRun(t *testing.T) {
	m := New(prometheus.NewRegistry())

	m.ObserveReminderRun(nil, time.Second)
	m.ObserveReminderRun(errors.New("boom"), time.Second)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReminderRuns.WithLabelValues("success")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ReminderRuns.WithLabelValues("error")))
}

func TestNilMetricsIsNoop(t *testing.T) {
	var m *Metrics

	assert.NotPanics(t, func() {
		m.IncrementRecordsCreated("member")
		m.ObserveUpload("document", 10)
		m.ObserveReminderRun(nil, time.Second)
		m.IncrementRateLookup("hit")
	})
}
