// Package pipeline turns suite bindings into test input files.
//
// This package implements the generate → render → write flow shared by the
// generate, verify and show commands, so every entry point produces
// byte-identical output for the same seed.
//
// # Flow
//
// For each selected test id the [Runner]:
//
//  1. Seeds a fresh random source with rng.Derive(seed, id), so a case
//     never depends on which other ids ran before it
//  2. Draws parameters and builds the case's graphs (suite.Binding.Generate)
//  3. Renders the Prompt and Solution inputs in memory
//  4. Writes <prompt dir>/<id>.in and <solution dir>/<id>.in through a
//     temporary file and a rename, so no partial file is ever visible
//
// A failing id is logged and reported in the joined error returned after
// all ids ran; it never touches other ids' files. A manifest recording the
// seed and the SHA-256 digest of every written file is stored as
// manifest.json in the output root.
//
// # Usage
//
//	runner := pipeline.NewRunner(logger)
//	result, err := runner.Generate(ctx, pipeline.Request{
//	    Seed:       42,
//	    Suite:      suite.Default(),
//	    OutputRoot: "out",
//	})
//
// Check a previous run:
//
//	m, err := pipeline.ReadManifest("out/manifest.json")
//	mismatches, err := runner.Verify(ctx, pipeline.Request{OutputRoot: "out"}, m)
package pipeline

import (
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/log"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/suite"
	"github.com/matzehuels/topogen/pkg/topology"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and Config
// =============================================================================

const (
	// DefaultOutputRoot is the directory the input directories live under.
	DefaultOutputRoot = "."

	// DefaultPromptDir holds the Prompt-format inputs.
	DefaultPromptDir = "prompt_inputs"

	// DefaultSolutionDir holds the Solution-format inputs.
	DefaultSolutionDir = "solution_inputs"

	// ManifestFile is the manifest's file name inside the output root.
	ManifestFile = "manifest.json"

	// InputExt is the extension of every generated input file.
	InputExt = ".in"

	// DefaultMaxRedraws bounds the duplicate-avoidance loop per case.
	DefaultMaxRedraws = topology.DefaultMaxRedraws
)

// =============================================================================
// Request - Run Configuration
// =============================================================================

// Request describes one generation or verification run.
type Request struct {
	// Seed is the run seed. Every case derives its own seed from it.
	Seed uint64

	// Suite is the test table. Nil means suite.Default().
	Suite *suite.Suite

	// IDs selects tests in the given order. Empty means the whole suite.
	IDs []int

	// Output layout.
	OutputRoot  string
	PromptDir   string
	SolutionDir string

	// MaxRedraws bounds the duplicate-avoidance loop of distinct tests.
	MaxRedraws int

	// Builder options applied to every topology builder.
	BuilderOptions []topology.Option

	// Logger overrides the runner's logger for this request.
	Logger *log.Logger

	validated bool
}

// ValidateAndSetDefaults checks the request and fills unset fields.
// It is idempotent.
func (r *Request) ValidateAndSetDefaults() error {
	if r.validated {
		return nil
	}
	if r.Suite == nil {
		r.Suite = suite.Default()
	}
	if r.OutputRoot == "" {
		r.OutputRoot = DefaultOutputRoot
	}
	if r.PromptDir == "" {
		r.PromptDir = DefaultPromptDir
	}
	if r.SolutionDir == "" {
		r.SolutionDir = DefaultSolutionDir
	}
	if r.MaxRedraws == 0 {
		r.MaxRedraws = DefaultMaxRedraws
	}
	if r.MaxRedraws < 0 {
		return perrors.New(perrors.ErrCodeInvalidInput, "max redraws must be positive, got %d", r.MaxRedraws)
	}
	if err := perrors.ValidateDirName(r.PromptDir); err != nil {
		return err
	}
	if err := perrors.ValidateDirName(r.SolutionDir); err != nil {
		return err
	}
	if r.PromptDir == r.SolutionDir {
		return perrors.New(perrors.ErrCodeInvalidPath, "prompt and solution directories must differ (both %q)", r.PromptDir)
	}
	if r.Logger == nil {
		r.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
	r.validated = true
	return nil
}

// PromptPath returns the Prompt input path for test id.
func (r *Request) PromptPath(id int) string {
	return filepath.Join(r.OutputRoot, r.PromptDir, strconv.Itoa(id)+InputExt)
}

// SolutionPath returns the Solution input path for test id.
func (r *Request) SolutionPath(id int) string {
	return filepath.Join(r.OutputRoot, r.SolutionDir, strconv.Itoa(id)+InputExt)
}

// ManifestPath returns the manifest path inside the output root.
func (r *Request) ManifestPath() string {
	return filepath.Join(r.OutputRoot, ManifestFile)
}

// =============================================================================
// Result
// =============================================================================

// Result contains the outputs of a generation run.
type Result struct {
	// Manifest lists every case that was written.
	Manifest *Manifest

	// Failed lists the ids that could not be generated or written.
	Failed []int

	// Stats contains timing and size information.
	Stats Stats
}

// Stats contains run statistics.
type Stats struct {
	Cases    int
	Failed   int
	Redraws  int
	Bytes    int
	Duration time.Duration
}
