package model

import "sort"

// Cell is a board coordinate. Cells are compared and hashed by value.
type Cell struct {
	X int
	Y int
}

// CellSet is an unordered set of unique cells
type CellSet map[Cell]struct{}

// NewCellSet creates a set holding the given cells
func NewCellSet(cells ...Cell) CellSet {
	set := make(CellSet, len(cells))
	for _, c := range cells {
		set.Add(c)
	}
	return set
}

// Add inserts a cell; adding an existing cell is a no-op
func (s CellSet) Add(c Cell) {
	s[c] = struct{}{}
}

// Contains reports whether the cell is in the set
func (s CellSet) Contains(c Cell) bool {
	_, ok := s[c]
	return ok
}

// Len returns the number of cells
func (s CellSet) Len() int {
	return len(s)
}

// Clear removes every cell, keeping the allocated map
func (s CellSet) Clear() {
	for c := range s {
		delete(s, c)
	}
}

// Clone returns an independent copy of the set
func (s CellSet) Clone() CellSet {
	out := make(CellSet, len(s))
	for c := range s {
		out[c] = struct{}{}
	}
	return out
}

// Equal reports whether both sets hold exactly the same cells
func (s CellSet) Equal(other CellSet) bool {
	if len(s) != len(other) {
		return false
	}
	for c := range s {
		if !other.Contains(c) {
			return false
		}
	}
	return true
}

// Cells returns the cells sorted by row, then column
func (s CellSet) Cells() []Cell {
	cells := make([]Cell, 0, len(s))
	for c := range s {
		cells = append(cells, c)
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i].Y != cells[j].Y {
			return cells[i].Y < cells[j].Y
		}
		return cells[i].X < cells[j].X
	})
	return cells
}
