// impl_chain.go — implementation of the Chain(n) constructor.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewElements).
//   - Adds nodes via cfg.nodeFn in ascending index order for i = 0..n-1.
//   - Emits links in stable order node[i] → node[i+1], labeled via cfg.linkFn.
//
// Complexity: O(n) nodes + O(n-1) links; O(1) extra space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hygraph/core"
)

const (
	methodChain   = "Chain"
	minChainNodes = 2
)

// Chain returns a Constructor that builds a directed path of n nodes joined
// by n-1 links.
func Chain(n int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minChainNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainNodes, ErrTooFewElements)
		}

		ids := make([]core.ID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.InsertNode(cfg.nodeFn(i)).ID()
		}
		for i := 0; i+1 < n; i++ {
			if _, err := g.InsertLink(cfg.linkFn(i), ids[i], ids[i+1]); err != nil {
				return fmt.Errorf("%s: InsertLink(%s→%s): %w", methodChain, ids[i], ids[i+1], err)
			}
		}
		return nil
	}
}
