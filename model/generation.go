package model

import (
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/sheikhrachel/go-life/rules"
)

// EvaluateCell decides whether c is alive in the next generation. It returns
// the cell and true when alive, and the zero Cell and false when dead.
func EvaluateCell(s *State, c Cell) (Cell, bool) {
	if rules.ApplyConwayRules(CountLivingNeighbors(s, c), s.Living.Contains(c)) {
		return c, true
	}
	return Cell{}, false
}

// Candidates returns every cell that can change next generation: the live
// cells and all of their valid neighbors.
func Candidates(s *State) CellSet {
	candidates := make(CellSet, s.Living.Len()*9)
	for c := range s.Living {
		candidates.Add(c)
		for _, n := range Neighbors(s, c) {
			candidates.Add(n)
		}
	}
	return candidates
}

// NextGeneration computes the next live-cell set sequentially
func NextGeneration(s *State, pool *SetPool) CellSet {
	next := pool.Get()
	for c := range Candidates(s) {
		if alive, ok := EvaluateCell(s, c); ok {
			next.Add(alive)
		}
	}
	return next
}

// NextGenerationParallel computes the next live-cell set by splitting the
// candidates across workers
func NextGenerationParallel(s *State, pool *SetPool) CellSet {
	var (
		candidates = Candidates(s).Cells()
		next       = pool.Get()
	)
	if len(candidates) == 0 {
		return next
	}

	var (
		eg             errgroup.Group
		numWorkers     = min(runtime.NumCPU(), len(candidates))
		cellsPerWorker = (len(candidates) + numWorkers - 1) / numWorkers // Ceiling division
		results        = make([][]Cell, numWorkers)
	)

	for i := range numWorkers {
		var (
			start = i * cellsPerWorker
			end   = min(start+cellsPerWorker, len(candidates))
		)
		if start >= len(candidates) {
			break
		}

		eg.Go(func() error {
			for _, c := range candidates[start:end] {
				if alive, ok := EvaluateCell(s, c); ok {
					results[i] = append(results[i], alive)
				}
			}
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		fmt.Printf("Error in parallel processing: %v\n", err)
	}

	for _, part := range results {
		for _, c := range part {
			next.Add(c)
		}
	}
	return next
}

// Step advances the state one generation, replacing its live set. The
// previous set is handed back to the pool once the swap is done.
func (s *State) Step(parallel bool, pool *SetPool) {
	var next CellSet
	if parallel {
		next = NextGenerationParallel(s, pool)
	} else {
		next = NextGeneration(s, pool)
	}

	prev := s.Living
	s.Living = next
	pool.Put(prev)
}
