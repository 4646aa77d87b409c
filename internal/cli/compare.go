package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/graph"
)

// compareCommand creates the compare command, which prints whether two
// Solution-format graphs have the same node count and edge set.
func (c *CLI) compareCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "compare [file-a file-b]",
		Short: "Print whether two graphs are equal",
		Long: `Compare reads two Solution-format graphs, either one from each file or
both from standard input, and prints "true" when they have the same node count
and the same set of undirected edges, "false" otherwise. Edge order does not
matter.`,
		Example: `  topogen compare expected.in actual.in
  cat expected.in actual.in | topogen compare`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 0 && len(args) != 2 {
				return fmt.Errorf("accepts 0 or 2 args, received %d", len(args))
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			var graphs []*graph.Graph
			if len(args) == 2 {
				for _, path := range args {
					gs, err := readGraphs(cmd, path)
					if err != nil {
						return err
					}
					if len(gs) != 1 {
						return perrors.New(perrors.ErrCodeInvalidFormat, "%s holds %d graphs, want 1", path, len(gs))
					}
					graphs = append(graphs, gs[0])
				}
			} else {
				gs, err := readGraphs(cmd, stdinArg)
				if err != nil {
					return err
				}
				if len(gs) != 2 {
					return perrors.New(perrors.ErrCodeInvalidFormat, "input holds %d graphs, want 2", len(gs))
				}
				graphs = gs
			}

			fmt.Fprintln(cmd.OutOrStdout(), strconv.FormatBool(graphs[0].Equal(graphs[1])))
			return nil
		},
	}

	return cmd
}
