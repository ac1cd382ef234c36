package model

import "sync"

// SetPool recycles live-cell sets between generations. A nil *SetPool is
// valid and simply allocates.
type SetPool struct {
	pool sync.Pool
}

func NewSetPool() *SetPool {
	return &SetPool{
		pool: sync.Pool{
			New: func() interface{} {
				return make(CellSet)
			},
		},
	}
}

// Get retrieves an empty set from the pool
func (p *SetPool) Get() CellSet {
	if p == nil {
		return make(CellSet)
	}
	return p.pool.Get().(CellSet)
}

// Put returns a set to the pool, clearing it first
func (p *SetPool) Put(s CellSet) {
	if p == nil || s == nil {
		return
	}
	s.Clear()
	p.pool.Put(s)
}
