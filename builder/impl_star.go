// impl_star.go — implementation of the Star(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewElements).
//   - Adds the hub as node index 0, then n-1 leaves via cfg.nodeFn.
//   - Emits spokes in stable order hub → leaf[i], labeled via cfg.linkFn.
//
// Complexity: O(n) nodes + O(n-1) links; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hygraph/core"
)

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a Constructor that builds a star of n nodes: one hub and n-1
// leaves, each reached by one outgoing link from the hub.
func Star(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minStarNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarNodes, ErrTooFewElements)
		}

		hub := g.InsertNode(cfg.nodeFn(0)).ID()
		var leaf core.ID
		for i := 1; i < n; i++ {
			leaf = g.InsertNode(cfg.nodeFn(i)).ID()
			if _, err := g.InsertLink(cfg.linkFn(i-1), hub, leaf); err != nil {
				return fmt.Errorf("%s: InsertLink(%s→%s): %w", methodStar, hub, leaf, err)
			}
		}
		return nil
	}
}
