// guard.go — the single-writer contract, made explicit.
//
// The core performs no internal locking: exactly one logical thread of
// execution may mutate a given instance at a time, and read-only iterators
// tolerate interleaved removal by reporting absence. Instead of hiding a
// mutex, every public mutator runs a cheap atomic check that turns a
// violated contract into an immediate panic naming the instance, the same
// way the runtime surfaces concurrent map writes.

package core

import (
	"fmt"
	"sync/atomic"
)

// enter marks the beginning of a mutation. It panics if another mutation is
// already in flight on this instance.
func (g *Hypergraph[N, E, H, L]) enter() {
	if !atomic.CompareAndSwapInt32(&g.writers, 0, 1) {
		panic(fmt.Sprintf("core: concurrent mutation of hypergraph instance %s", g.instance))
	}
}

// leave marks the end of a mutation started by enter.
func (g *Hypergraph[N, E, H, L]) leave() {
	atomic.StoreInt32(&g.writers, 0)
}
