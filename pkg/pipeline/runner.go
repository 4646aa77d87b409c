package pipeline

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/observability"
	"github.com/matzehuels/topogen/pkg/suite"
)

// Runner executes generation runs. It holds no per-run state, so one Runner
// can serve any number of sequential requests.
type Runner struct {
	Logger *log.Logger
}

// NewRunner creates a runner. A nil logger means log.Default().
func NewRunner(logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Logger: logger}
}

// Generate builds every selected test, writes its input files and the
// manifest, and returns the joined error of all failed ids.
//
// Cancellation is checked between cases; files already written stay.
func (r *Runner) Generate(ctx context.Context, req Request) (*Result, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	bindings, err := req.Suite.Select(req.IDs)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeTestNotFound, err, "select tests")
	}
	for _, dir := range []string{req.PromptDir, req.SolutionDir} {
		if err := os.MkdirAll(filepath.Join(req.OutputRoot, dir), 0o755); err != nil {
			return nil, perrors.Wrap(perrors.ErrCodeInternal, err, "create output directory")
		}
	}

	start := time.Now()
	result := &Result{Manifest: NewManifest(req.Seed)}
	var errs []error

	for _, b := range bindings {
		if err := ctx.Err(); err != nil {
			errs = append(errs, err)
			break
		}
		entry, art, err := r.generateOne(ctx, &req, b)
		if art.Case != nil {
			result.Stats.Redraws += art.Case.Redraws
		}
		if err != nil {
			req.Logger.Error("test failed", "test", b.ID, "name", b.Name, "err", perrors.UserMessage(err))
			result.Failed = append(result.Failed, b.ID)
			errs = append(errs, err)
			continue
		}
		result.Manifest.Cases = append(result.Manifest.Cases, entry)
		result.Stats.Bytes += len(art.Prompt) + len(art.Solution)
	}

	var buf bytes.Buffer
	if err := WriteManifest(&buf, result.Manifest); err != nil {
		errs = append(errs, err)
	} else if err := r.write(ctx, req.ManifestPath(), buf.Bytes()); err != nil {
		errs = append(errs, perrors.Wrap(perrors.ErrCodeInternal, err, "write manifest"))
	}

	result.Stats.Cases = len(result.Manifest.Cases)
	result.Stats.Failed = len(result.Failed)
	result.Stats.Duration = time.Since(start)
	req.Logger.Info("generation finished",
		"cases", result.Stats.Cases,
		"failed", result.Stats.Failed,
		"duration", result.Stats.Duration)

	return result, errors.Join(errs...)
}

// generateOne builds, renders and writes a single test. The artifact is
// never nil.
func (r *Runner) generateOne(ctx context.Context, req *Request, b suite.Binding) (CaseEntry, *Artifact, error) {
	hooks := observability.Generation()
	hooks.OnCaseStart(ctx, b.ID, b.Name)
	start := time.Now()

	art, err := Build(req.Seed, b, suite.GenerateOptions{
		MaxRedraws: req.MaxRedraws,
		Builder:    req.BuilderOptions,
	})
	redraws := 0
	if art.Case != nil {
		redraws = art.Case.Redraws
	}
	if redraws > 0 {
		hooks.OnRedraw(ctx, b.ID, redraws)
	}
	if err != nil {
		hooks.OnCaseComplete(ctx, b.ID, b.Name, 0, time.Since(start), err)
		return CaseEntry{}, art, err
	}

	paths := []string{req.PromptPath(b.ID), req.SolutionPath(b.ID)}
	if err := r.writeAll(ctx, paths, [][]byte{art.Prompt, art.Solution}); err != nil {
		err = perrors.Wrap(perrors.ErrCodeInternal, err, "test %d (%s)", b.ID, b.Name)
		hooks.OnCaseComplete(ctx, b.ID, b.Name, 0, time.Since(start), err)
		return CaseEntry{}, art, err
	}

	entry := art.Entry()
	hooks.OnCaseComplete(ctx, b.ID, b.Name, entry.Edges, time.Since(start), nil)
	req.Logger.Debug("generated test",
		"test", b.ID,
		"name", b.Name,
		"nodes", entry.Nodes,
		"edges", entry.Edges,
		"redraws", redraws)
	return entry, art, nil
}

func (r *Runner) write(ctx context.Context, path string, data []byte) error {
	if err := writeAtomic(path, data); err != nil {
		return err
	}
	observability.Output().OnWrite(ctx, path, len(data))
	return nil
}

func (r *Runner) writeAll(ctx context.Context, paths []string, data [][]byte) error {
	if err := writeAllAtomic(paths, data); err != nil {
		return err
	}
	for i, path := range paths {
		observability.Output().OnWrite(ctx, path, len(data[i]))
	}
	return nil
}

// Mismatch is one disagreement found by Verify.
type Mismatch struct {
	ID     int
	Field  string // "prompt", "solution", "prompt file", "solution file", "params"
	Want   string
	Got    string
	Reason string
}

func (m Mismatch) String() string {
	if m.Reason != "" {
		return fmt.Sprintf("test %d %s: %s", m.ID, m.Field, m.Reason)
	}
	return fmt.Sprintf("test %d %s: want %.12s, got %.12s", m.ID, m.Field, m.Want, m.Got)
}

// Verify regenerates every case recorded in m from m.Seed and compares the
// in-memory renderings with the recorded digests. When the files exist under
// req's output layout, their digests are compared too; a missing file is a
// mismatch. The error is non-nil only when verification could not run.
func (r *Runner) Verify(ctx context.Context, req Request, m *Manifest) ([]Mismatch, error) {
	r.applyLogger(&req)
	if err := req.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	hooks := observability.Output()

	var mismatches []Mismatch
	for _, want := range m.Cases {
		if err := ctx.Err(); err != nil {
			return mismatches, err
		}
		b, err := req.Suite.Lookup(want.ID)
		if err != nil {
			return mismatches, perrors.Wrap(perrors.ErrCodeTestNotFound, err, "manifest test %d", want.ID)
		}

		found := r.verifyOne(&req, m.Seed, b, want)
		hooks.OnVerify(ctx, want.ID, len(found) == 0)
		if len(found) > 0 {
			req.Logger.Warn("test mismatch", "test", want.ID, "name", want.Name, "mismatches", len(found))
		} else {
			req.Logger.Debug("test verified", "test", want.ID)
		}
		mismatches = append(mismatches, found...)
	}
	return mismatches, nil
}

func (r *Runner) verifyOne(req *Request, seed uint64, b suite.Binding, want CaseEntry) []Mismatch {
	art, err := Build(seed, b, suite.GenerateOptions{
		MaxRedraws: req.MaxRedraws,
		Builder:    req.BuilderOptions,
	})
	if err != nil {
		return []Mismatch{{ID: want.ID, Field: "params", Reason: perrors.UserMessage(err)}}
	}

	var out []Mismatch
	got := art.Entry()
	if got.Nodes != want.Nodes || got.Edges != want.Edges || got.Topology != want.Topology {
		out = append(out, Mismatch{
			ID:    want.ID,
			Field: "params",
			Want:  fmt.Sprintf("%s n=%d m=%d", want.Topology, want.Nodes, want.Edges),
			Got:   fmt.Sprintf("%s n=%d m=%d", got.Topology, got.Nodes, got.Edges),
		})
	}
	if got.PromptSHA256 != want.PromptSHA256 {
		out = append(out, Mismatch{ID: want.ID, Field: "prompt", Want: want.PromptSHA256, Got: got.PromptSHA256})
	}
	if got.SolutionSHA256 != want.SolutionSHA256 {
		out = append(out, Mismatch{ID: want.ID, Field: "solution", Want: want.SolutionSHA256, Got: got.SolutionSHA256})
	}

	files := []struct {
		field, path, digest string
	}{
		{"prompt file", req.PromptPath(want.ID), want.PromptSHA256},
		{"solution file", req.SolutionPath(want.ID), want.SolutionSHA256},
	}
	for _, f := range files {
		data, err := os.ReadFile(f.path)
		if err != nil {
			out = append(out, Mismatch{ID: want.ID, Field: f.field, Reason: err.Error()})
			continue
		}
		if d := Hash(data); d != f.digest {
			out = append(out, Mismatch{ID: want.ID, Field: f.field, Want: f.digest, Got: d})
		}
	}
	return out
}

// applyLogger sets the runner's logger on the request if not already set.
func (r *Runner) applyLogger(req *Request) {
	if req.Logger == nil {
		req.Logger = r.Logger
	}
}
