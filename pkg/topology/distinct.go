package topology

import (
	"fmt"

	"github.com/matzehuels/topogen/pkg/graph"
)

// DefaultMaxRedraws bounds the attempts made by [Distinct] when the caller
// passes a non-positive limit.
const DefaultMaxRedraws = 64

// DrawFunc produces one candidate graph.
type DrawFunc func() (*graph.Graph, error)

// Distinct draws candidates until one differs from ref under exact-labeling
// equality ([graph.Graph.Equal]) and returns it. It makes at most
// maxAttempts draws and then fails with ErrRetryExhausted. Errors from draw
// are returned unchanged.
//
// Exact-labeling equality is not isomorphism rejection: the caller must pick
// parameters with more than one labeled realization (a path on 1 or 2 nodes
// has exactly one), or every attempt will be rejected.
func Distinct(ref *graph.Graph, maxAttempts int, draw DrawFunc) (*graph.Graph, error) {
	if maxAttempts <= 0 {
		maxAttempts = DefaultMaxRedraws
	}
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		g, err := draw()
		if err != nil {
			return nil, err
		}
		if !g.Equal(ref) {
			return g, nil
		}
	}
	return nil, fmt.Errorf("no distinct candidate in %d attempts: %w", maxAttempts, ErrRetryExhausted)
}
