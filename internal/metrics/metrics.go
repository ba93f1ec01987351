package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics holds the Prometheus collectors for the registries.
// A nil *Metrics is valid and records nothing.
type Metrics struct {
	Registrations *prometheus.CounterVec
	Mutations     *prometheus.CounterVec
	Denials       *prometheus.CounterVec
	StorageErrors *prometheus.CounterVec
}

// New creates the collectors and registers them with reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		Registrations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "evidenca_registrations_total",
			Help: "Total number of records registered",
		}, []string{"kind"}),
		Mutations: f.NewCounterVec(prometheus.CounterOpts{
			Name: "evidenca_mutations_total",
			Help: "Total number of authorized record mutations",
		}, []string{"kind", "action"}),
		Denials: f.NewCounterVec(prometheus.CounterOpts{
			Name: "evidenca_denials_total",
			Help: "Total number of mutations rejected by the authorization policy",
		}, []string{"kind", "action"}),
		StorageErrors: f.NewCounterVec(prometheus.CounterOpts{
			Name: "evidenca_storage_errors_total",
			Help: "Total number of storage failures surfaced to callers",
		}, []string{"kind"}),
	}
}

func (m *Metrics) IncRegistrations(kind string) {
	if m == nil {
		return
	}
	m.Registrations.WithLabelValues(kind).Inc()
}

func (m *Metrics) IncMutations(kind, action string) {
	if m == nil {
		return
	}
	m.Mutations.WithLabelValues(kind, action).Inc()
}

func (m *Metrics) IncDenials(kind, action string) {
	if m == nil {
		return
	}
	m.Denials.WithLabelValues(kind, action).Inc()
}

func (m *Metrics) IncStorageErrors(kind string) {
	if m == nil {
		return
	}
	m.StorageErrors.WithLabelValues(kind).Inc()
}
