package cli

import (
	"bufio"
	"fmt"
	"io"
	"path/filepath"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/pipeline"
)

// generateOpts holds the flags of the generate command.
type generateOpts struct {
	seed       uint64
	seedStdin  bool
	tests      []int
	pick       bool
	out        string
	config     string
	suite      string
	maxRedraws int
}

// generateCommand creates the generate command for writing test inputs.
func (c *CLI) generateCommand() *cobra.Command {
	var opts generateOpts

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Write prompt and solution inputs for a seed",
		Long: `Generate builds every test of the suite from one run seed and writes
<out>/prompt_inputs/<id>.in, <out>/solution_inputs/<id>.in and
<out>/manifest.json.

The seed comes from --seed, from standard input with --seed-stdin, or from
the config file, in that order.`,
		Example: `  # All tests for seed 42 into the current directory
  topogen generate --seed 42

  # Seed piped in, two tests only
  echo 42 | topogen generate --seed-stdin -t 1 -t 4 -o build/

  # Choose tests interactively
  topogen generate --seed 42 --pick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runGenerate(cmd, opts)
		},
	}

	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "run seed")
	cmd.Flags().BoolVar(&opts.seedStdin, "seed-stdin", false, "read the run seed from standard input")
	cmd.Flags().IntSliceVarP(&opts.tests, "test", "t", nil, "test id to generate (repeatable, default all)")
	cmd.Flags().BoolVar(&opts.pick, "pick", false, "choose tests interactively")
	cmd.Flags().StringVarP(&opts.out, "out", "o", "", "output root directory")
	cmd.Flags().StringVarP(&opts.config, "config", "c", "", "TOML run config")
	cmd.Flags().StringVar(&opts.suite, "suite", "", "TOML suite file (default built-in suite)")
	cmd.Flags().IntVar(&opts.maxRedraws, "max-redraws", 0, "redraw limit for distinct tests")
	cmd.MarkFlagsMutuallyExclusive("seed", "seed-stdin")
	cmd.MarkFlagsMutuallyExclusive("test", "pick")

	return cmd
}

func (c *CLI) runGenerate(cmd *cobra.Command, opts generateOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	req, hasSeed, err := requestFromFlags(opts.config, opts.suite, opts.out)
	if err != nil {
		return err
	}
	if opts.maxRedraws > 0 {
		req.MaxRedraws = opts.maxRedraws
	}

	switch {
	case cmd.Flags().Changed("seed"):
		req.Seed = opts.seed
	case opts.seedStdin:
		seed, err := readSeed(cmd.InOrStdin())
		if err != nil {
			return err
		}
		req.Seed = seed
	case !hasSeed:
		return perrors.New(perrors.ErrCodeInvalidInput, "no seed: use --seed, --seed-stdin or a config with seed")
	}

	req.IDs = opts.tests
	if opts.pick {
		ids, err := pickTests(req.Suite)
		if err != nil {
			return fmt.Errorf("picker: %w", err)
		}
		if ids == nil {
			printWarning("Cancelled")
			return nil
		}
		req.IDs = ids
	}

	logger.Info("Generating tests", "seed", req.Seed, "tests", len(req.IDs))
	prog := newProgress(logger)

	result, err := c.newRunner().Generate(ctx, req)
	if result == nil {
		return err
	}
	prog.done(fmt.Sprintf("Generated %d tests", result.Stats.Cases))

	if result.Stats.Cases > 0 {
		printSuccess("Generated %s tests for seed %s",
			StyleNumber.Render(strconv.Itoa(result.Stats.Cases)),
			StyleNumber.Render(strconv.FormatUint(req.Seed, 10)))
		printFile(filepath.Join(req.OutputRoot, req.PromptDir))
		printFile(filepath.Join(req.OutputRoot, req.SolutionDir))
		printFile(req.ManifestPath())
		printStats(
			fmt.Sprintf("%d bytes", result.Stats.Bytes),
			fmt.Sprintf("%d redraws", result.Stats.Redraws),
			result.Stats.Duration.Round(time.Millisecond).String(),
		)
	}
	for _, id := range result.Failed {
		printError("test %d failed", id)
	}
	return err
}

// requestFromFlags builds a pipeline request from an optional config file,
// then applies the --suite and --out overrides. The second result reports
// whether the config supplied a seed.
func requestFromFlags(configPath, suitePath, out string) (pipeline.Request, bool, error) {
	var (
		req     pipeline.Request
		hasSeed bool
	)
	if configPath != "" {
		cfg, err := pipeline.LoadConfig(configPath)
		if err != nil {
			return req, false, err
		}
		req, hasSeed, err = cfg.Request()
		if err != nil {
			return req, false, err
		}
	}
	if suitePath != "" || req.Suite == nil {
		s, err := loadSuite(suitePath)
		if err != nil {
			return req, false, err
		}
		req.Suite = s
	}
	if out != "" {
		req.OutputRoot = out
	}
	return req, hasSeed, nil
}

// readSeed reads the first whitespace-separated token of r as an unsigned seed.
func readSeed(r io.Reader) (uint64, error) {
	sc := bufio.NewScanner(r)
	sc.Split(bufio.ScanWords)
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return 0, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "read seed")
		}
		return 0, perrors.New(perrors.ErrCodeInvalidInput, "no seed on standard input")
	}
	seed, err := strconv.ParseUint(sc.Text(), 10, 64)
	if err != nil {
		return 0, perrors.Wrap(perrors.ErrCodeInvalidInput, err, "parse seed %q", sc.Text())
	}
	return seed, nil
}
