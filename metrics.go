package afio

import "github.com/prometheus/client_golang/prometheus"

// metrics is the dispatcher's diagnostics surface, exported so an embedder
// can register it against their own prometheus.Registry instead of the
// global default one.
type metrics struct {
	opsTotal    *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	queueDepth  prometheus.Gauge
}

func newMetrics() *metrics {
	return &metrics{
		opsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "afio",
			Name:      "ops_total",
			Help:      "Operations submitted to the dispatcher, by kind.",
		}, []string{"kind"}),
		errorsTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "afio",
			Name:      "op_errors_total",
			Help:      "Operations that completed with an error, by kind and error kind.",
		}, []string{"kind", "error_kind"}),
		queueDepth: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "afio",
			Name:      "queue_depth",
			Help:      "Tasks currently queued in the dispatcher's thread source.",
		}),
	}
}

// Collectors returns the metrics in a form ready for prometheus.Registerer.MustRegister.
func (d *Dispatcher) Collectors() []prometheus.Collector {
	return []prometheus.Collector{d.metrics.opsTotal, d.metrics.errorsTotal, d.metrics.queueDepth}
}

func (m *metrics) record(kind OpKind, err error) {
	m.opsTotal.WithLabelValues(string(kind)).Inc()
	if err != nil {
		m.errorsTotal.WithLabelValues(string(kind), KindOf(err).String()).Inc()
	}
}
