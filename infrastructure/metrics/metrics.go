package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	SchedulerTicks = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orgconnect", Name: "scheduler_ticks_total", Help: "Number of simulation ticks by job."},
		[]string{"job"},
	)
	ViewsRendered = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orgconnect", Name: "views_rendered_total", Help: "Number of rendered pages by view."},
		[]string{"view"},
	)
	AuditEvicted = prometheus.NewCounter(
		prometheus.CounterOpts{Namespace: "orgconnect", Name: "audit_entries_evicted_total", Help: "Number of audit entries dropped by the bounded log."},
	)
	Logins = prometheus.NewCounterVec(
		prometheus.CounterOpts{Namespace: "orgconnect", Name: "logins_total", Help: "Number of sign-in attempts by outcome."},
		[]string{"outcome"},
	)
	OpenWorkspaces = prometheus.NewGauge(
		prometheus.GaugeOpts{Namespace: "orgconnect", Name: "open_workspaces", Help: "Number of signed-in sessions with live state."},
	)
)

func RegisterCollectors(reg prometheus.Registerer) {
	reg.MustRegister(SchedulerTicks)
	reg.MustRegister(ViewsRendered)
	reg.MustRegister(AuditEvicted)
	reg.MustRegister(Logins)
	reg.MustRegister(OpenWorkspaces)
}

// NewRegistry returns a registry with the app collectors plus the Go and
// process collectors.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector())
	reg.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	RegisterCollectors(reg)
	return reg
}

// Handler serves the exposition format for reg.
func Handler(reg *prometheus.Registry) http.Handler {
	return promhttp.HandlerFor(reg, promhttp.HandlerOpts{})
}
