package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Resultados possíveis de um relatório
const (
	OutcomeSuccess    = "success"
	OutcomeInvalid    = "invalid"
	OutcomeDependency = "dependency_error"
)

// Metrics agrupa os coletores Prometheus do serviço de relatórios
type Metrics struct {
	registry *prometheus.Registry

	Reports         *prometheus.CounterVec
	ReportDuration  prometheus.Histogram
	ReportGroups    prometheus.Histogram
	UpstreamLatency *prometheus.HistogramVec
	UpstreamErrors  *prometheus.CounterVec
}

// New cria um registry próprio, para que cada instância seja independente (testes incluídos)
func New(namespace string) *Metrics {
	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	factory := promauto.With(registry)

	return &Metrics{
		registry: registry,
		Reports: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "attribution_reports_total",
				Help:      "Total number of attribution reports by outcome",
			},
			[]string{"outcome"},
		),
		ReportDuration: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "attribution_report_duration_seconds",
				Help:      "End-to-end time to build an attribution report",
				Buckets:   prometheus.DefBuckets,
			},
		),
		ReportGroups: factory.NewHistogram(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "attribution_report_groups",
				Help:      "Number of attribution groups per report",
				Buckets:   []float64{0, 1, 5, 10, 25, 50, 100, 250, 500},
			},
		),
		UpstreamLatency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "upstream_request_duration_seconds",
				Help:      "Latency of calls to upstream services",
				Buckets:   []float64{.01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10},
			},
			[]string{"service"},
		),
		UpstreamErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "upstream_errors_total",
				Help:      "Failed calls to upstream services",
			},
			[]string{"service"},
		),
	}
}

// ObserveReport registra o resultado de um relatório; seguro com receiver nil
func (m *Metrics) ObserveReport(outcome string, duration time.Duration, groups int) {
	if m == nil {
		return
	}
	m.Reports.WithLabelValues(outcome).Inc()
	m.ReportDuration.Observe(duration.Seconds())
	if outcome == OutcomeSuccess {
		m.ReportGroups.Observe(float64(groups))
	}
}

// ObserveUpstream registra a latência (e eventual falha) de uma chamada upstream
func (m *Metrics) ObserveUpstream(service string, duration time.Duration, err error) {
	if m == nil {
		return
	}
	m.UpstreamLatency.WithLabelValues(service).Observe(duration.Seconds())
	if err != nil {
		m.UpstreamErrors.WithLabelValues(service).Inc()
	}
}

// Handler expõe as métricas no formato Prometheus
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{})
}

// Registry é usado nos testes para inspecionar os coletores
func (m *Metrics) Registry() *prometheus.Registry {
	return m.registry
}
