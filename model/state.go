package model

import (
	"crypto/md5"
	"encoding/binary"
	"fmt"
)

// State is the whole simulation: fixed board dimensions plus the live cells.
// Every cell not in Living is dead.
type State struct {
	Width  int
	Height int
	Living CellSet
}

// NewState creates a state with the specified dimensions and live cells
func NewState(width, height int, cells ...Cell) *State {
	return &State{
		Width:  width,
		Height: height,
		Living: NewCellSet(cells...),
	}
}

// Clone returns a deep copy of the state
func (s *State) Clone() *State {
	return &State{
		Width:  s.Width,
		Height: s.Height,
		Living: s.Living.Clone(),
	}
}

// IsAlive reports whether the cell is currently alive
func (s *State) IsAlive(c Cell) bool {
	return s.Living.Contains(c)
}

// CountLivingCells returns the total number of living cells
func (s *State) CountLivingCells() int {
	return s.Living.Len()
}

// BoundingBox returns the extents of the living cells; ok is false when
// nothing is alive.
func (s *State) BoundingBox() (minX, minY, maxX, maxY int, ok bool) {
	for c := range s.Living {
		if !ok {
			minX, maxX, minY, maxY = c.X, c.X, c.Y, c.Y
			ok = true
			continue
		}
		minX = min(minX, c.X)
		maxX = max(maxX, c.X)
		minY = min(minY, c.Y)
		maxY = max(maxY, c.Y)
	}
	return
}

// GetBoundingBoxSize returns the area of the active region
func (s *State) GetBoundingBoxSize() int {
	minX, minY, maxX, maxY, ok := s.BoundingBox()
	if !ok {
		return 0
	}
	return (maxX - minX + 1) * (maxY - minY + 1)
}

// Hash returns an MD5 digest of the live cells, independent of map order
func (s *State) Hash() string {
	var (
		h   = md5.New()
		buf [16]byte
	)
	for _, c := range s.Living.Cells() {
		binary.LittleEndian.PutUint64(buf[:8], uint64(c.X))
		binary.LittleEndian.PutUint64(buf[8:], uint64(c.Y))
		h.Write(buf[:])
	}
	return fmt.Sprintf("%x", h.Sum(nil))
}
