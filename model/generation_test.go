package model

import (
	"math/rand"
	"testing"
)

var (
	block   = []Cell{{1, 1}, {2, 1}, {1, 2}, {2, 2}}
	blinker = []Cell{{1, 2}, {2, 2}, {3, 2}}
	glider  = []Cell{{2, 1}, {3, 2}, {1, 3}, {2, 3}, {3, 3}}
)

func TestNextGeneration(t *testing.T) {
	tests := []struct {
		name string
		in   []Cell
		want []Cell
	}{
		{name: "empty stays empty", in: nil, want: nil},
		{name: "lone cell dies", in: []Cell{{4, 4}}, want: nil},
		{name: "domino dies", in: []Cell{{4, 4}, {5, 4}}, want: nil},
		{name: "block is a still life", in: block, want: block},
		{name: "blinker turns vertical", in: blinker, want: []Cell{{2, 1}, {2, 2}, {2, 3}}},
		{name: "L tromino grows a fourth cell", in: []Cell{{1, 1}, {2, 1}, {1, 2}}, want: block},
		{name: "crowded stem dies", in: []Cell{{1, 1}, {2, 1}, {3, 1}, {2, 2}, {2, 3}},
			want: []Cell{{2, 0}, {1, 1}, {2, 1}, {3, 1}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState(10, 10, tt.in...)
			got := NextGeneration(s, nil)
			if want := NewCellSet(tt.want...); !got.Equal(want) {
				t.Fatalf("NextGeneration = %v, want %v", got.Cells(), want.Cells())
			}
		})
	}
}

func TestBlinkerOscillates(t *testing.T) {
	s := NewState(10, 10, blinker...)
	start := s.Living.Clone()

	s.Step(false, nil)
	if s.Living.Equal(start) {
		t.Fatal("blinker did not change after one step")
	}
	s.Step(false, nil)
	if !s.Living.Equal(start) {
		t.Fatalf("blinker after two steps = %v, want %v", s.Living.Cells(), start.Cells())
	}
}

func TestGliderTranslates(t *testing.T) {
	s := NewState(20, 20, glider...)
	for range 4 {
		s.Step(false, nil)
	}

	want := NewCellSet()
	for _, c := range glider {
		want.Add(Cell{X: c.X + 1, Y: c.Y + 1})
	}
	if !s.Living.Equal(want) {
		t.Fatalf("glider after 4 steps = %v, want %v", s.Living.Cells(), want.Cells())
	}
}

func TestEvaluateCell(t *testing.T) {
	s := NewState(10, 10, []Cell{{1, 1}, {2, 1}, {1, 2}}...)

	if c, ok := EvaluateCell(s, Cell{2, 2}); !ok || c != (Cell{2, 2}) {
		t.Errorf("dead cell with 3 neighbors: got (%v, %v), want alive", c, ok)
	}
	if _, ok := EvaluateCell(s, Cell{1, 1}); !ok {
		t.Error("live cell with 2 neighbors should survive")
	}
	if c, ok := EvaluateCell(s, Cell{5, 5}); ok || c != (Cell{}) {
		t.Errorf("isolated dead cell: got (%v, %v), want dead", c, ok)
	}
}

// Evaluating every live cell and every dead neighbor of a live cell must
// reproduce the stepper's output.
func TestCandidatesAreExhaustive(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := NewState(30, 30)
	for range 250 {
		s.Living.Add(Cell{X: rng.Intn(30), Y: rng.Intn(30)})
	}

	union := NewCellSet()
	for c := range s.Living {
		if alive, ok := EvaluateCell(s, c); ok {
			union.Add(alive)
		}
		for _, n := range Neighbors(s, c) {
			if s.IsAlive(n) {
				continue
			}
			if alive, ok := EvaluateCell(s, n); ok {
				union.Add(alive)
			}
		}
	}

	// brute force over the whole neighbor range as a cross-check
	full := NewCellSet()
	for y := 0; y <= s.Height; y++ {
		for x := 0; x <= s.Width; x++ {
			if alive, ok := EvaluateCell(s, Cell{x, y}); ok {
				full.Add(alive)
			}
		}
	}

	next := NextGeneration(s, nil)
	if !union.Equal(next) {
		t.Fatalf("union of evaluations has %d cells, stepper has %d", union.Len(), next.Len())
	}
	if !full.Equal(next) {
		t.Fatalf("full scan has %d cells, stepper has %d", full.Len(), next.Len())
	}
}

func TestNextGenerationParallelMatchesSequential(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	s := NewState(60, 40)
	for range 700 {
		s.Living.Add(Cell{X: rng.Intn(60), Y: rng.Intn(40)})
	}

	seq := s.Clone()
	par := s.Clone()
	pool := NewSetPool()
	for gen := range 20 {
		seq.Step(false, nil)
		par.Step(true, pool)
		if !seq.Living.Equal(par.Living) {
			t.Fatalf("generation %d: parallel has %d cells, sequential has %d", gen+1, par.Living.Len(), seq.Living.Len())
		}
	}
}

func TestNextGenerationParallelEmpty(t *testing.T) {
	if got := NextGenerationParallel(NewState(5, 5), nil); got.Len() != 0 {
		t.Fatalf("NextGenerationParallel(empty) = %v, want empty", got.Cells())
	}
}

func TestStepReplacesLiveSet(t *testing.T) {
	var (
		pool = NewSetPool()
		s    = NewState(10, 10, []Cell{{1, 1}, {2, 1}, {1, 2}}...)
		prev = s.Living
	)
	s.Step(false, pool)

	if !s.Living.Equal(NewCellSet(block...)) {
		t.Fatalf("Step = %v, want block", s.Living.Cells())
	}
	if prev.Len() != 0 {
		t.Fatalf("previous set should be cleared when returned to the pool, has %d cells", prev.Len())
	}
}

// Coordinates equal to the width or height are inside the neighbor range.
func TestBoundaryIsInclusive(t *testing.T) {
	s := NewState(3, 5, []Cell{{2, 0}, {2, 1}, {2, 2}}...)
	s.Step(false, nil)

	want := NewCellSet(Cell{1, 1}, Cell{2, 1}, Cell{3, 1})
	if !s.Living.Equal(want) {
		t.Fatalf("Step = %v, want %v", s.Living.Cells(), want.Cells())
	}
}
