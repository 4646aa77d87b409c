package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/format"
	"github.com/matzehuels/topogen/pkg/pipeline"
	"github.com/matzehuels/topogen/pkg/render"
	"github.com/matzehuels/topogen/pkg/suite"
)

// Output formats accepted by show.
const (
	formatPrompt   = "prompt"
	formatSolution = "solution"
	formatJSON     = "json"
	formatDOT      = "dot"
)

var showFormats = []string{formatPrompt, formatSolution, formatJSON, formatDOT}

// showCommand creates the show command for printing a single test.
func (c *CLI) showCommand() *cobra.Command {
	var (
		seed       uint64
		outFormat  string
		suitePath  string
		maxRedraws int
	)

	cmd := &cobra.Command{
		Use:   "show <id>",
		Short: "Print one generated test",
		Long: `Show generates a single test in memory and prints it. The output is
byte-identical to the file generate writes for the same seed and id.`,
		Example: `  topogen show 6 --seed 42
  topogen show 2 --seed 42 --format json
  topogen show 4 --seed 7 --format dot | dot -Tpng > forest.png`,
		Args: cobra.ExactArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			var ids []string
			for _, b := range suite.Default().Bindings() {
				ids = append(ids, strconv.Itoa(b.ID)+"\t"+b.Name)
			}
			return ids, cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := strconv.Atoi(args[0])
			if err != nil {
				return perrors.Wrap(perrors.ErrCodeInvalidInput, err, "test id %q", args[0])
			}
			s, err := loadSuite(suitePath)
			if err != nil {
				return err
			}
			b, err := s.Lookup(id)
			if err != nil {
				return perrors.Wrap(perrors.ErrCodeTestNotFound, err, "show")
			}

			art, err := pipeline.Build(seed, b, suite.GenerateOptions{MaxRedraws: maxRedraws})
			if err != nil {
				return err
			}
			loggerFromContext(cmd.Context()).Debug("built test",
				"test", id, "name", b.Name, "params", art.Case.Params.String(), "redraws", art.Case.Redraws)

			return writeArtifact(cmd, art, outFormat)
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "run seed")
	cmd.Flags().StringVarP(&outFormat, "format", "f", formatPrompt, "output format: "+strings.Join(showFormats, ", "))
	cmd.Flags().StringVar(&suitePath, "suite", "", "TOML suite file (default built-in suite)")
	cmd.Flags().IntVar(&maxRedraws, "max-redraws", 0, "redraw limit for distinct tests")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(showFormats, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func writeArtifact(cmd *cobra.Command, art *pipeline.Artifact, outFormat string) error {
	w := cmd.OutOrStdout()
	switch outFormat {
	case formatPrompt:
		_, err := w.Write(art.Prompt)
		return err
	case formatSolution:
		_, err := w.Write(art.Solution)
		return err
	case formatJSON:
		for _, g := range art.Case.Graphs {
			if err := format.WriteJSON(w, g); err != nil {
				return err
			}
		}
		return nil
	case formatDOT:
		for _, g := range art.Case.Graphs {
			if _, err := fmt.Fprint(w, render.ToDOT(g, render.Options{Detailed: true})); err != nil {
				return err
			}
		}
		return nil
	}
	return perrors.New(perrors.ErrCodeInvalidInput, "unknown format %q (want %s)", outFormat, strings.Join(showFormats, ", "))
}
