// Package builder assembles deterministic labeled hypergraph fixtures:
// chains, stars, sliding-window hyperedge meshes, and nested towers.
//
// One orchestrator, Build(gopts, bopts, cons...), creates the hypergraph,
// resolves the builder configuration, and applies constructors in order.
// Constructors validate early, return sentinel errors, and never panic, so
// the same inputs and constructor order always produce identical fixtures.
package builder

import (
	"fmt"

	"github.com/katalvlaran/hygraph/core"
)

// Graph is the label-valued hypergraph the builder constructs: every element
// kind carries a string label.
type Graph = core.Hypergraph[string, string, string, string]

// Constructor applies one deterministic topology mutation using the resolved
// builderConfig. Constructors validate parameters early, return sentinel
// errors, and emit elements in a stable, documented order.
type Constructor func(g *Graph, cfg builderConfig) error

// Build creates a new labeled hypergraph with core options gopts, resolves
// the builder configuration from bopts, and applies all constructors in
// order. The first constructor error aborts; no partial cleanup is attempted.
// Complexity: O(len(bopts)) resolution + the cost of each constructor.
func Build(gopts []core.Option, bopts []Option, cons ...Constructor) (*Graph, error) {
	g := core.New[string, string, string, string](gopts...)
	cfg := newBuilderConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("Build: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("Build: %w", err)
		}
	}
	return g, nil
}
