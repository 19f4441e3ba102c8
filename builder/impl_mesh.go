// impl_mesh.go — implementation of the Mesh(n, width) constructor.
//
// Contract:
//   - n ≥ 2 and 2 ≤ width ≤ n (else ErrTooFewElements / ErrBadWidth).
//   - Adds n nodes via cfg.nodeFn, then one hyperedge per sliding window of
//     width consecutive nodes, in ascending window order via cfg.edgeFn.
//
// Complexity: O(n) nodes + O((n-width+1)·width) vertex references.

package builder

import (
	"fmt"

	"github.com/katalvlaran/hygraph/core"
)

const (
	methodMesh   = "Mesh"
	minMeshNodes = 2
	minMeshWidth = 2
)

// Mesh returns a Constructor that builds n nodes covered by sliding-window
// hyperedges of the given width: edge j spans nodes j..j+width-1.
func Mesh(n, width int) Constructor {
	return func(g *Graph, cfg builderConfig) error {
		if n < minMeshNodes {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodMesh, n, minMeshNodes, ErrTooFewElements)
		}
		if width < minMeshWidth || width > n {
			return fmt.Errorf("%s: width=%d for n=%d: %w", methodMesh, width, n, ErrBadWidth)
		}

		ids := make([]core.ID, n)
		for i := 0; i < n; i++ {
			ids[i] = g.InsertNode(cfg.nodeFn(i)).ID()
		}
		for j := 0; j+width <= n; j++ {
			if _, err := g.InsertEdge(cfg.edgeFn(j), ids[j:j+width]...); err != nil {
				return fmt.Errorf("%s: InsertEdge(window %d): %w", methodMesh, j, err)
			}
		}
		return nil
	}
}
