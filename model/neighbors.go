package model

// neighborOffsets lists the 8 surrounding offsets in a fixed order
var neighborOffsets = [8]Cell{
	{X: -1, Y: -1},
	{X: -1, Y: 0},
	{X: -1, Y: 1},
	{X: 0, Y: -1},
	{X: 0, Y: 1},
	{X: 1, Y: -1},
	{X: 1, Y: 0},
	{X: 1, Y: 1},
}

// validCell reports whether a coordinate is inside the neighbor search range.
// The upper bound is inclusive: x == Width and y == Height are accepted.
func (s *State) validCell(x, y int) bool {
	return x >= 0 && x <= s.Width && y >= 0 && y <= s.Height
}

// Neighbors returns the valid neighbor coordinates of a cell, in offset order
func Neighbors(s *State, c Cell) []Cell {
	neighbors := make([]Cell, 0, len(neighborOffsets))
	for _, off := range neighborOffsets {
		var (
			x = c.X + off.X
			y = c.Y + off.Y
		)
		if !s.validCell(x, y) {
			continue
		}
		neighbors = append(neighbors, Cell{X: x, Y: y})
	}
	return neighbors
}

// CountLivingNeighbors counts how many valid neighbors of c are alive
func CountLivingNeighbors(s *State, c Cell) (count int) {
	for _, n := range Neighbors(s, c) {
		if s.Living.Contains(n) {
			count++
		}
	}
	return
}
