// Package metrics exposes rotation counters and gauges to Prometheus.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "bucketwise"

// Metrics holds the collectors updated by the services.
type Metrics struct {
	registry *prometheus.Registry

	paymentsRecorded   *prometheus.CounterVec
	exemptionsGranted  prometheus.Counter
	exemptionsConsumed prometheus.Counter
	cycleResets        prometheus.Counter
	activeMembers      prometheus.Gauge
	exemptedMembers    prometheus.Gauge
}

// New creates the collectors on a fresh registry, along with Go runtime and
// process collectors.
func New() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		paymentsRecorded: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "payments_recorded_total",
			Help:      "Bucket payments recorded, by kind.",
		}, []string{"kind"}),
		exemptionsGranted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exemptions_granted_total",
			Help:      "Exemption credits granted to payers.",
		}),
		exemptionsConsumed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "exemptions_consumed_total",
			Help:      "Exemption credits spent by skipped members.",
		}),
		cycleResets: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cycle_resets_total",
			Help:      "Times the payment history was reset.",
		}),
		activeMembers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "active_members",
			Help:      "Members currently in the rotation.",
		}),
		exemptedMembers: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "exempted_members",
			Help:      "Active members currently holding exemptions.",
		}),
	}

	m.registry.MustRegister(
		m.paymentsRecorded,
		m.exemptionsGranted,
		m.exemptionsConsumed,
		m.cycleResets,
		m.activeMembers,
		m.exemptedMembers,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return m
}

// Handler serves the registry in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// Registry returns the underlying registry.
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}

// PaymentRecorded counts one payment and its exemption changes.
func (m *Metrics) PaymentRecorded(kind string, granted bool, consumed int) {
	if m == nil {
		return
	}
	m.paymentsRecorded.WithLabelValues(kind).Inc()
	if granted {
		m.exemptionsGranted.Inc()
	}
	m.exemptionsConsumed.Add(float64(consumed))
}

// CycleReset counts a history reset.
func (m *Metrics) CycleReset() {
	if m == nil {
		return
	}
	m.cycleResets.Inc()
}

// ObserveRoster sets the member gauges.
func (m *Metrics) ObserveRoster(active, exempted int) {
	if m == nil {
		return
	}
	m.activeMembers.Set(float64(active))
	m.exemptedMembers.Set(float64(exempted))
}
