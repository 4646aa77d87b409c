// Package cli implements the topogen command-line interface.
//
// # Commands
//
//   - generate: write prompt and solution inputs for a seed
//   - verify: regenerate a run from its manifest and compare digests
//   - list: print the test suite
//   - show: print one generated test in any format
//   - render: draw a Solution-format graph as SVG
//   - traverse: print the depth-first visit hash of a graph
//   - compare: print whether two graphs are equal
//   - completion: shell completion scripts
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger
// is attached to the command context and retrieved with loggerFromContext.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/topogen/pkg/buildinfo"
	"github.com/matzehuels/topogen/pkg/observability"
	"github.com/matzehuels/topogen/pkg/pipeline"
	"github.com/matzehuels/topogen/pkg/suite"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for display.
	appName = "topogen"

	// stdinArg names standard input where a file argument is accepted.
	stdinArg = "-"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{Logger: newLogger(w, level)}
}

// SetLogLevel updates the logger's level. At debug level, generation and
// output hooks are routed to the logger as well.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
	if level <= log.DebugLevel {
		hooks := &logHooks{logger: c.Logger}
		observability.SetGenerationHooks(hooks)
		observability.SetOutputHooks(hooks)
	}
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "topogen generates randomized graph test inputs",
		Long:         `topogen builds random graphs with guaranteed structure (paths, cliques, trees, forests, starfish, sparse and dense graphs) and writes them as prompt and solution inputs for a grading pipeline.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
		},
	}

	root.SetVersionTemplate(buildinfo.Template())

	root.AddCommand(c.generateCommand())
	root.AddCommand(c.verifyCommand())
	root.AddCommand(c.listCommand())
	root.AddCommand(c.showCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.traverseCommand())
	root.AddCommand(c.compareCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner() *pipeline.Runner {
	return pipeline.NewRunner(c.Logger)
}

// =============================================================================
// Suite Helpers
// =============================================================================

// loadSuite returns the suite at path, or the built-in one when path is empty.
func loadSuite(path string) (*suite.Suite, error) {
	if path == "" {
		return suite.Default(), nil
	}
	return suite.Load(path)
}
