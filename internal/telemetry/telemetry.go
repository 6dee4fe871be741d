// Package telemetry wires together the ambient logging and metrics
// stack shared by cmd/folproof's subcommands: a structured hclog.Logger
// and a Prometheus registry, which `prove -metrics-addr` exposes over
// HTTP.
package telemetry

import (
	"net/http"

	"github.com/gorilla/mux"
	"github.com/hashicorp/go-hclog"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/nstefanovic/folproof/pkg/fol"
)

// Telemetry bundles a named logger, a Prometheus registry and the
// fol.Stats registered against it, so a Theory constructed by
// cmd/folproof can be instrumented with one call.
type Telemetry struct {
	Logger   hclog.Logger
	Registry *prometheus.Registry
	Stats    *fol.Stats
}

// Options configures logger verbosity and naming.
type Options struct {
	Name  string
	Level hclog.Level
	JSON  bool
}

// New builds a Telemetry instance: an hclog.Logger named opts.Name at
// opts.Level, a fresh Prometheus registry carrying the Go/process
// collectors plus fol's draw counters, and the *fol.Stats to pass to
// fol.WithStats.
func New(opts Options) *Telemetry {
	if opts.Name == "" {
		opts.Name = "folproof"
	}
	if opts.Level == hclog.NoLevel {
		opts.Level = hclog.Info
	}

	logger := hclog.New(&hclog.LoggerOptions{
		Name:       opts.Name,
		Level:      opts.Level,
		JSONFormat: opts.JSON,
	})

	registry := prometheus.NewRegistry()
	registry.MustRegister(prometheus.NewGoCollector())
	registry.MustRegister(prometheus.NewProcessCollector(prometheus.ProcessCollectorOpts{}))

	stats := fol.NewStats(registry, "folproof", "theory")

	return &Telemetry{Logger: logger, Registry: registry, Stats: stats}
}

// Handler returns an HTTP handler exposing /metrics and /healthz on a
// gorilla/mux router, served by `folproof prove -metrics-addr`.
func (t *Telemetry) Handler() http.Handler {
	r := mux.NewRouter()
	r.Handle("/metrics", promhttp.HandlerFor(t.Registry, promhttp.HandlerOpts{})).Methods(http.MethodGet)
	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}).Methods(http.MethodGet)
	return r
}
