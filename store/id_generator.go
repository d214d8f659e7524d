package store

import "sync/atomic"

// IDGenerator hands out identifiers for newly created catalog items.
// It is injected into the store so tests can control id assignment.
type IDGenerator interface {
	Next() uint64
}

// CounterGenerator issues strictly increasing ids. Unlike a
// timestamp-based id, two back-to-back creates can never collide.
type CounterGenerator struct {
	last atomic.Uint64
}

// NewCounterGenerator returns a generator whose first id is start+1.
func NewCounterGenerator(start uint64) *CounterGenerator {
	g := &CounterGenerator{}
	g.last.Store(start)
	return g
}

func (g *CounterGenerator) Next() uint64 {
	return g.last.Add(1)
}
