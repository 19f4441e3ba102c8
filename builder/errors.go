// errors.go — sentinel errors for the builder package.
//
// Only sentinel variables are exposed; callers branch with errors.Is.
// Implementations attach context with %w and never panic at runtime.

package builder

import "errors"

// ErrTooFewElements indicates that a size parameter (n, depth, width) is
// smaller than the minimum the requested topology needs.
var ErrTooFewElements = errors.New("builder: parameter too small")

// ErrBadWidth indicates a hyperedge width outside the valid range for the
// requested topology (width < 2 or width > n).
var ErrBadWidth = errors.New("builder: invalid hyperedge width")

// ErrConstructFailed indicates the orchestrator could not run a constructor,
// e.g. a nil Constructor was supplied.
var ErrConstructFailed = errors.New("builder: construction failed")
