package fol

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

// Stats is an optional Prometheus registration for a Theory's draw
// activity. A nil *Stats is a valid no-op receiver: every method on it
// tolerates a nil pointer so instrumenting a Theory stays opt-in.
type Stats struct {
	draws      *prometheus.CounterVec
	drawLength prometheus.Histogram
	theorems   prometheus.Gauge
}

// NewStats builds and registers the counters for a Theory under the
// given namespace/subsystem, e.g. NewStats(prometheus.DefaultRegisterer,
// "folproof", "theory").
func NewStats(reg prometheus.Registerer, namespace, subsystem string) *Stats {
	s := &Stats{
		draws: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "draws_total",
			Help:      "Number of Theory.Draw calls, partitioned by outcome.",
		}, []string{"outcome"}),
		drawLength: prometheus.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "draw_duration_seconds",
			Help:      "Wall-clock time spent inside Theory.Draw.",
			Buckets:   prometheus.DefBuckets,
		}),
		theorems: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "theorem_cache_size",
			Help:      "Number of formulas currently cached as proved.",
		}),
	}
	if reg != nil {
		reg.MustRegister(s.draws, s.drawLength, s.theorems)
	}
	return s
}

func (s *Stats) observeDraw(outcome string, elapsed time.Duration) {
	if s == nil {
		return
	}
	s.draws.WithLabelValues(outcome).Inc()
	s.drawLength.Observe(elapsed.Seconds())
}

func (s *Stats) setTheoremCount(n int) {
	if s == nil {
		return
	}
	s.theorems.Set(float64(n))
}
