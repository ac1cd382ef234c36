package utils

import (
	"strings"
	"testing"
	"time"
)

func TestStatsUpdate(t *testing.T) {
	s := NewStats()

	s.Update(0, 100, 16, 0)
	if s.AveragePopulation != 100 || s.GenerationsPerSecond != 0 {
		t.Fatalf("first update: avg %v, gen/sec %v", s.AveragePopulation, s.GenerationsPerSecond)
	}

	s.Update(1, 200, 25, 100*time.Millisecond)
	if s.AveragePopulation != 110 {
		t.Fatalf("AveragePopulation = %v, want 110", s.AveragePopulation)
	}
	if s.GenerationsPerSecond != 10 {
		t.Fatalf("GenerationsPerSecond = %v, want 10", s.GenerationsPerSecond)
	}
	if s.TotalGenerations != 1 || s.ActiveCells != 200 || s.BoundingBoxSize != 25 {
		t.Fatalf("unexpected stats %+v", s)
	}

	s.Restarts = 2
	if summary := s.Summary(); !strings.HasPrefix(summary, "1 generations in") || !strings.HasSuffix(summary, "2 restarts") {
		t.Fatalf("Summary = %q", summary)
	}
}
