// impl_tower.go — implementation of the Tower(depth) constructor.
//
// Contract:
//   - depth ≥ 1 (else ErrTooFewElements).
//   - Nests one hypergraph per level, each labeled via cfg.nodeFn by its
//     level index, with one marker node per level labeled the same way.
//
// Complexity: O(depth) elements across depth nested scopes.

package builder

import "fmt"

const (
	methodTower   = "Tower"
	minTowerDepth = 1
)

// Tower returns a Constructor that builds a nesting chain depth levels deep:
// level 0 is the target hypergraph itself; each level i < depth holds one
// marker node and, below the last level, one nested hypergraph.
func Tower(depth int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if depth < minTowerDepth {
			return fmt.Errorf("%s: depth=%d < min=%d: %w", methodTower, depth, minTowerDepth, ErrTooFewElements)
		}

		cur := g
		for i := 0; i < depth; i++ {
			cur.InsertNode(cfg.nodeFn(i))
			if i+1 == depth {
				break
			}
			h := cur.InsertGraph(cfg.nodeFn(i + 1))
			sub, ok := cur.SubGraph(h)
			if !ok {
				return fmt.Errorf("%s: nested level %d vanished: %w", methodTower, i+1, ErrConstructFailed)
			}
			cur = sub
		}
		return nil
	}
}
