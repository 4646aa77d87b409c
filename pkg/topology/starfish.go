package topology

import (
	"fmt"

	"github.com/matzehuels/topogen/pkg/graph"
)

const methodStarfish = "Starfish"

// Starfish builds a centre node with rays disjoint paths ("arms") attached
// to it. The n-1 non-centre nodes are split randomly among the rays, each
// ray holding between 1 and maxRayLength nodes.
//
// Requires rays >= 1, maxRayLength >= 1 and rays <= n-1 <= rays*maxRayLength.
func (b *Builder) Starfish(n, rays, maxRayLength int) (*graph.Graph, error) {
	if err := checkNodes(methodStarfish, n); err != nil {
		return nil, err
	}
	if rays < 1 || maxRayLength < 1 {
		return nil, fmt.Errorf("%s: rays=%d, maxRayLength=%d must be positive: %w",
			methodStarfish, rays, maxRayLength, ErrInfeasibleParameters)
	}
	if arms := n - 1; arms < rays || arms > rays*maxRayLength {
		return nil, fmt.Errorf("%s: %d nodes cannot fill %d rays of length 1..%d: %w",
			methodStarfish, arms, rays, maxRayLength, ErrInfeasibleParameters)
	}

	pairs := make([]pair, 0, n-1)
	next := 1
	for _, length := range b.composition(n-1, rays, maxRayLength) {
		prev := 0
		for i := 0; i < length; i++ {
			pairs = append(pairs, pair{prev, next})
			prev = next
			next++
		}
	}
	return b.emit(methodStarfish, n, pairs, true)
}
