package fol

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestNewStatsRegistersCollectors(t *testing.T) {
	reg := prometheus.NewRegistry()
	s := NewStats(reg, "test", "theory")
	s.observeDraw("refuted", 10*time.Millisecond)
	s.setTheoremCount(3)

	if got := testutil.ToFloat64(s.theorems); got != 3 {
		t.Fatalf("expected theorem_cache_size=3, got %v", got)
	}
	if got := testutil.ToFloat64(s.draws.WithLabelValues("refuted")); got != 1 {
		t.Fatalf("expected draws_total{outcome=refuted}=1, got %v", got)
	}
}

func TestNewStatsToleratesNilRegisterer(t *testing.T) {
	s := NewStats(nil, "test", "theory")
	if s == nil {
		t.Fatalf("NewStats should return a usable *Stats even with a nil registerer")
	}
	s.observeDraw("open", time.Millisecond)
}

func TestNilStatsMethodsAreNoOps(t *testing.T) {
	var s *Stats
	s.observeDraw("refuted", time.Millisecond)
	s.setTheoremCount(5)
}
