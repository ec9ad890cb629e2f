package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

func counterValue(t *testing.T, c prometheus.Counter) float64 {
	t.Helper()
	var m dto.Metric
	if err := c.Write(&m); err != nil {
		t.Fatalf("write counter: %v", err)
	}
	return m.GetCounter().GetValue()
}

func gaugeValue(t *testing.T, g prometheus.Gauge) float64 {
	t.Helper()
	var m dto.Metric
	if err := g.Write(&m); err != nil {
		t.Fatalf("write gauge: %v", err)
	}
	return m.GetGauge().GetValue()
}

func TestCheckoutMetrics_Outcomes(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetricsWithRegisterer(reg)

	m.CheckoutStarted()
	if got := gaugeValue(t, m.activeCheckouts); got != 1 {
		t.Fatalf("in flight = %v, want 1", got)
	}
	m.CheckoutRetried()
	m.RecordAllocation(4, 2)
	m.CheckoutFinished(OutcomeCommitted, 15*time.Millisecond)

	if got := gaugeValue(t, m.activeCheckouts); got != 0 {
		t.Fatalf("in flight = %v, want 0", got)
	}
	if got := counterValue(t, m.checkouts.WithLabelValues(OutcomeCommitted)); got != 1 {
		t.Fatalf("committed = %v, want 1", got)
	}
	if got := counterValue(t, m.checkoutRetries); got != 1 {
		t.Fatalf("retries = %v, want 1", got)
	}
	if got := counterValue(t, m.unitsAllocated); got != 4 {
		t.Fatalf("units = %v, want 4", got)
	}
}

func TestCheckoutMetrics_Payments(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewCheckoutMetricsWithRegisterer(reg)

	m.PaymentConfirmed("card")
	m.PaymentConfirmed("card")
	m.PaymentAlreadyConfirmed()

	if got := counterValue(t, m.paymentsConfirmed.WithLabelValues("card")); got != 2 {
		t.Fatalf("card payments = %v, want 2", got)
	}
	if got := counterValue(t, m.paymentsRepeated); got != 1 {
		t.Fatalf("already confirmed = %v, want 1", got)
	}
}

func TestCheckoutMetrics_ReRegistrationReusesCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	first := NewCheckoutMetricsWithRegisterer(reg)
	second := NewCheckoutMetricsWithRegisterer(reg)

	first.RecordOutboxEvent()
	second.RecordOutboxEvent()

	if got := counterValue(t, first.outboxEvents); got != 2 {
		t.Fatalf("outbox events = %v, want 2 (shared collector)", got)
	}
}

func TestCheckoutMetrics_NilSafe(t *testing.T) {
	var m *CheckoutMetrics
	m.CheckoutStarted()
	m.CheckoutFinished(OutcomeFailed, time.Second)
	m.RecordTimelineEvent()
}

func TestOutboxMetrics_Backlog(t *testing.T) {
	m := NewOutboxMetrics(prometheus.NewRegistry())

	m.PublishAttempt(OutboxResultSent)
	m.PublishAttempt(OutboxResultSent)
	if got := counterValue(t, m.publishAttempts.WithLabelValues(OutboxResultSent)); got != 2 {
		t.Fatalf("sent = %v, want 2", got)
	}

	m.SetBacklog(3, time.Now().Add(-2*time.Second))
	if got := gaugeValue(t, m.pendingRecords); got != 3 {
		t.Fatalf("pending = %v, want 3", got)
	}
	if got := gaugeValue(t, m.oldestPendingAge); got < 1 {
		t.Fatalf("oldest age = %v, want >= 1", got)
	}

	m.SetBacklog(0, time.Time{})
	if got := gaugeValue(t, m.oldestPendingAge); got != 0 {
		t.Fatalf("oldest age = %v, want 0", got)
	}

	var nilMetrics *OutboxMetrics
	nilMetrics.PublishAttempt(OutboxResultFailed)
	nilMetrics.SetBacklog(1, time.Now())
}

func TestIdempotencyCleanupMetrics(t *testing.T) {
	m := NewIdempotencyCleanupMetrics(prometheus.NewRegistry())

	m.Deleted(2)
	m.Deleted(0)
	m.Run(true, 2)
	m.Run(false, 0)

	if got := counterValue(t, m.deleted); got != 2 {
		t.Fatalf("deleted = %v, want 2", got)
	}
	if got := gaugeValue(t, m.lastDeleted); got != 2 {
		t.Fatalf("last deleted = %v, want 2", got)
	}
	if got := counterValue(t, m.runs.WithLabelValues("error")); got != 1 {
		t.Fatalf("error runs = %v, want 1", got)
	}
}
