package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/topogen/pkg/graph"
)

// traverseCommand creates the traverse command, the reference solution of
// the depth-first traversal task.
func (c *CLI) traverseCommand() *cobra.Command {
	var start int
	var showOrder, showDistances bool

	cmd := &cobra.Command{
		Use:   "traverse [file]",
		Short: "Print the depth-first visit hash of each graph",
		Long: `Traverse reads Solution-format graphs from a file or standard input and,
for each one, walks it depth-first from the start node, trying neighbors in
edge-list order. It prints sum((i+1) * order[i]) over the visit order, one line
per graph. With --distances it prints the breadth-first hop distance from the
start node to every node instead, -1 for unreachable nodes.`,
		Example: `  topogen traverse solution_inputs/10.in
  topogen show 1 --seed 42 -f solution | topogen traverse --order
  topogen show 4 --seed 7 -f solution | topogen traverse --distances`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graphs, err := readGraphs(cmd, inputArg(args))
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			for i, g := range graphs {
				if showDistances {
					dist, err := graph.Distances(g, start)
					if err != nil {
						return fmt.Errorf("graph %d: %w", i, err)
					}
					fmt.Fprintln(w, joinInts(dist))
					continue
				}
				order, err := graph.Walk(g, start)
				if err != nil {
					return fmt.Errorf("graph %d: %w", i, err)
				}
				if showOrder {
					fmt.Fprintln(w, joinInts(order))
					continue
				}
				fmt.Fprintln(w, graph.VisitHash(order))
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&start, "start", 0, "start node")
	cmd.Flags().BoolVar(&showOrder, "order", false, "print the visit order instead of its hash")
	cmd.Flags().BoolVar(&showDistances, "distances", false, "print hop distances from the start node")
	cmd.MarkFlagsMutuallyExclusive("order", "distances")

	return cmd
}

func joinInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}
	return strings.Join(parts, " ")
}
