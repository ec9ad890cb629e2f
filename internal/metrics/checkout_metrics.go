package metrics

import (
	"fmt"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Исходы checkout для метки outcome.
const (
	OutcomeCommitted         = "committed"
	OutcomeInsufficientStock = "insufficient_stock"
	OutcomeConflict          = "conflict"
	OutcomeValidation        = "validation"
	OutcomeNotFound          = "not_found"
	OutcomeCanceled          = "canceled"
	OutcomeFailed            = "failed"
)

// CheckoutMetrics содержит метрики оформления заказов и подтверждения оплаты.
type CheckoutMetrics struct {
	checkouts        *prometheus.CounterVec
	checkoutRetries  prometheus.Counter
	checkoutDuration prometheus.Histogram
	unitsAllocated   prometheus.Counter
	lotsTouched      prometheus.Histogram

	paymentsConfirmed *prometheus.CounterVec
	paymentsRepeated  prometheus.Counter

	timelineEvents prometheus.Counter
	outboxEvents   prometheus.Counter

	activeCheckouts prometheus.Gauge
}

// NewCheckoutMetrics создаёт метрики в глобальном реестре Prometheus.
func NewCheckoutMetrics() *CheckoutMetrics {
	return NewCheckoutMetricsWithRegisterer(prometheus.DefaultRegisterer)
}

// NewCheckoutMetricsWithRegisterer регистрирует метрики в переданном реестре (нужно тестам).
func NewCheckoutMetricsWithRegisterer(registerer prometheus.Registerer) *CheckoutMetrics {
	if registerer == nil {
		registerer = prometheus.DefaultRegisterer
	}

	return &CheckoutMetrics{
		checkouts: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "checkout_attempts_total",
			Help: "Checkout calls by final outcome",
		}, []string{"outcome"}),
		checkoutRetries: registerCounter(registerer, prometheus.CounterOpts{
			Name: "checkout_retries_total",
			Help: "Checkout re-plans caused by concurrent lot modification",
		}),
		checkoutDuration: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "checkout_duration_seconds",
			Help:    "Duration of checkout including retries",
			Buckets: []float64{0.001, 0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1.0, 2.5, 5.0},
		}),
		unitsAllocated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "checkout_units_allocated_total",
			Help: "Units deducted from lots by committed checkouts",
		}),
		lotsTouched: registerHistogram(registerer, prometheus.HistogramOpts{
			Name:    "checkout_lots_touched",
			Help:    "Number of lots deducted by one committed checkout",
			Buckets: []float64{1, 2, 3, 5, 8, 13, 21},
		}),
		paymentsConfirmed: registerCounterVec(registerer, prometheus.CounterOpts{
			Name: "order_payments_confirmed_total",
			Help: "Orders moved to paid state by payment method",
		}, []string{"method"}),
		paymentsRepeated: registerCounter(registerer, prometheus.CounterOpts{
			Name: "order_payments_already_confirmed_total",
			Help: "Payment confirmations rejected because the order was already paid",
		}),
		timelineEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "order_timeline_events_total",
			Help: "Total number of timeline events recorded",
		}),
		outboxEvents: registerCounter(registerer, prometheus.CounterOpts{
			Name: "order_outbox_events_total",
			Help: "Total number of outbox events enqueued",
		}),
		activeCheckouts: registerGauge(registerer, prometheus.GaugeOpts{
			Name: "checkout_in_flight",
			Help: "Number of checkouts currently being processed",
		}),
	}
}

func registerCounter(registerer prometheus.Registerer, opts prometheus.CounterOpts) prometheus.Counter {
	collector := prometheus.NewCounter(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Counter)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter %q: %v", opts.Name, err))
	}
	return collector
}

func registerCounterVec(registerer prometheus.Registerer, opts prometheus.CounterOpts, labels []string) *prometheus.CounterVec {
	collector := prometheus.NewCounterVec(opts, labels)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(*prometheus.CounterVec)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register counter vec %q: %v", opts.Name, err))
	}
	return collector
}

func registerGauge(registerer prometheus.Registerer, opts prometheus.GaugeOpts) prometheus.Gauge {
	collector := prometheus.NewGauge(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Gauge)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register gauge %q: %v", opts.Name, err))
	}
	return collector
}

func registerHistogram(registerer prometheus.Registerer, opts prometheus.HistogramOpts) prometheus.Histogram {
	collector := prometheus.NewHistogram(opts)
	if err := registerer.Register(collector); err != nil {
		if alreadyRegistered, ok := err.(prometheus.AlreadyRegisteredError); ok {
			existing, ok := alreadyRegistered.ExistingCollector.(prometheus.Histogram)
			if !ok {
				panic(fmt.Sprintf("collector %q already registered with unexpected type", opts.Name))
			}
			return existing
		}
		panic(fmt.Sprintf("register histogram %q: %v", opts.Name, err))
	}
	return collector
}

// CheckoutStarted отмечает начало оформления.
func (m *CheckoutMetrics) CheckoutStarted() {
	if m == nil {
		return
	}
	m.activeCheckouts.Inc()
}

// CheckoutFinished фиксирует исход и длительность оформления.
func (m *CheckoutMetrics) CheckoutFinished(outcome string, duration time.Duration) {
	if m == nil {
		return
	}
	m.activeCheckouts.Dec()
	m.checkouts.WithLabelValues(outcome).Inc()
	m.checkoutDuration.Observe(duration.Seconds())
}

// CheckoutRetried увеличивает счётчик повторов после конфликта.
func (m *CheckoutMetrics) CheckoutRetried() {
	if m == nil {
		return
	}
	m.checkoutRetries.Inc()
}

// RecordAllocation учитывает списанные единицы и количество тронутых лотов.
func (m *CheckoutMetrics) RecordAllocation(units int64, lots int) {
	if m == nil {
		return
	}
	m.unitsAllocated.Add(float64(units))
	m.lotsTouched.Observe(float64(lots))
}

// PaymentConfirmed увеличивает счётчик оплат по методу.
func (m *CheckoutMetrics) PaymentConfirmed(method string) {
	if m == nil {
		return
	}
	m.paymentsConfirmed.WithLabelValues(method).Inc()
}

// PaymentAlreadyConfirmed учитывает повторное подтверждение.
func (m *CheckoutMetrics) PaymentAlreadyConfirmed() {
	if m == nil {
		return
	}
	m.paymentsRepeated.Inc()
}

// RecordTimelineEvent увеличивает счётчик событий timeline.
func (m *CheckoutMetrics) RecordTimelineEvent() {
	if m == nil {
		return
	}
	m.timelineEvents.Inc()
}

// RecordOutboxEvent увеличивает счётчик событий outbox.
func (m *CheckoutMetrics) RecordOutboxEvent() {
	if m == nil {
		return
	}
	m.outboxEvents.Inc()
}
