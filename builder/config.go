// config.go — functional options resolving into an immutable builderConfig.

package builder

import "fmt"

// LabelFn produces a deterministic label for the element at index i.
type LabelFn func(i int) string

// builderConfig is the resolved, immutable configuration every Constructor
// receives. Same options in, same labels out.
type builderConfig struct {
	nodeFn LabelFn // node labels, default "v%d"
	linkFn LabelFn // link labels, default "l%d"
	edgeFn LabelFn // hyperedge labels, default "e%d"
}

// Option configures fixture construction via functional arguments.
type Option func(*builderConfig)

// newBuilderConfig resolves options over the defaults.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		nodeFn: func(i int) string { return fmt.Sprintf("v%d", i) },
		linkFn: func(i int) string { return fmt.Sprintf("l%d", i) },
		edgeFn: func(i int) string { return fmt.Sprintf("e%d", i) },
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// WithNodeLabels sets the node label scheme. Nil is ignored.
func WithNodeLabels(fn LabelFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.nodeFn = fn
		}
	}
}

// WithLinkLabels sets the link label scheme. Nil is ignored.
func WithLinkLabels(fn LabelFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.linkFn = fn
		}
	}
}

// WithEdgeLabels sets the hyperedge label scheme. Nil is ignored.
func WithEdgeLabels(fn LabelFn) Option {
	return func(c *builderConfig) {
		if fn != nil {
			c.edgeFn = fn
		}
	}
}
