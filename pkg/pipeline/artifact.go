package pipeline

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"errors"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/format"
	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/rng"
	"github.com/matzehuels/topogen/pkg/suite"
	"github.com/matzehuels/topogen/pkg/topology"
)

// Artifact is one generated case rendered in memory.
type Artifact struct {
	Case     *suite.Case
	Seed     uint64
	Prompt   []byte
	Solution []byte
}

// Entry summarizes the artifact for the manifest.
func (a *Artifact) Entry() CaseEntry {
	b := a.Case.Binding
	return CaseEntry{
		ID:             b.ID,
		Name:           b.Name,
		Topology:       string(b.Topology),
		Seed:           a.Seed,
		Nodes:          a.Case.Params.Nodes,
		Edges:          a.Case.Edges(),
		PromptSHA256:   Hash(a.Prompt),
		SolutionSHA256: Hash(a.Solution),
	}
}

// Render renders every graph of c in both formats. Pairs are concatenated
// in order: the first graph's rendering, then the second's.
func Render(c *suite.Case) (prompt, solution []byte) {
	var pb, sb bytes.Buffer
	for _, g := range c.Graphs {
		_ = format.WritePrompt(&pb, g)
		_ = format.WriteSolution(&sb, g)
	}
	return pb.Bytes(), sb.Bytes()
}

// Build generates binding b for the run seed and renders it. It performs no
// I/O. Errors carry a pkg/errors code and name the test and its drawn
// parameters.
func Build(seed uint64, b suite.Binding, opts suite.GenerateOptions) (*Artifact, error) {
	caseSeed := rng.Derive(seed, b.ID)
	c, err := b.Generate(rng.New(caseSeed), opts)
	if err != nil {
		return &Artifact{Case: c, Seed: caseSeed}, perrors.Wrap(classify(err), err,
			"test %d (%s, %s %s)", b.ID, b.Name, b.Topology, c.Params)
	}
	prompt, solution := Render(c)
	return &Artifact{Case: c, Seed: caseSeed, Prompt: prompt, Solution: solution}, nil
}

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// classify maps domain sentinels to error codes.
func classify(err error) perrors.Code {
	switch {
	case errors.Is(err, suite.ErrInvalidGraph):
		return perrors.ErrCodeInternal
	case errors.Is(err, rng.ErrInvalidRange):
		return perrors.ErrCodeInvalidRange
	case errors.Is(err, topology.ErrInfeasibleParameters):
		return perrors.ErrCodeInfeasible
	case errors.Is(err, topology.ErrRetryExhausted):
		return perrors.ErrCodeRetryExhausted
	case errors.Is(err, topology.ErrUnknownKind), errors.Is(err, format.ErrMalformed),
		errors.Is(err, graph.ErrTooManyNodes):
		return perrors.ErrCodeInvalidInput
	default:
		return perrors.ErrCodeInternal
	}
}
