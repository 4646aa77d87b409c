package topology

import "errors"

var (
	// ErrInfeasibleParameters is returned when the requested topology cannot
	// exist for the given node count and shape parameters.
	ErrInfeasibleParameters = errors.New("infeasible parameters")

	// ErrRetryExhausted is returned when a bounded retry loop (construction
	// restarts or duplicate-avoidance redraws) gives up.
	ErrRetryExhausted = errors.New("retry attempts exhausted")

	// ErrUnknownKind is returned by [ParseKind] and [Builder.Build] for an
	// unrecognized topology name.
	ErrUnknownKind = errors.New("unknown topology kind")
)
