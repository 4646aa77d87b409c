package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/matzehuels/topogen/pkg/suite"
	"github.com/matzehuels/topogen/pkg/topology"
)

// listCommand creates the list command for printing the suite.
func (c *CLI) listCommand() *cobra.Command {
	var suitePath string
	var asTOML, kinds bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Print the test suite",
		Example: `  topogen list
  topogen list --toml > suite.toml
  topogen list --kinds`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := cmd.OutOrStdout()
			if kinds {
				for _, k := range topology.Kinds() {
					fmt.Fprintln(w, k)
				}
				return nil
			}

			s, err := loadSuite(suitePath)
			if err != nil {
				return err
			}
			if asTOML {
				return s.Encode(w)
			}
			fmt.Fprintln(w, suiteTable(s))
			return nil
		},
	}

	cmd.Flags().StringVar(&suitePath, "suite", "", "TOML suite file (default built-in suite)")
	cmd.Flags().BoolVar(&asTOML, "toml", false, "print the suite as TOML")
	cmd.Flags().BoolVar(&kinds, "kinds", false, "print the supported topology kinds")
	cmd.MarkFlagsMutuallyExclusive("toml", "kinds")

	return cmd
}

// suiteTable renders the suite as a bordered table.
func suiteTable(s *suite.Suite) string {
	var rows [][]string
	for _, b := range s.Bindings() {
		distinct := ""
		if b.Distinct {
			distinct = "✓"
		}
		rows = append(rows, []string{
			strconv.Itoa(b.ID), b.Name, string(b.Topology), b.Nodes.String(), bindingExtras(b), distinct,
		})
	}

	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorDim)).
		Headers("ID", "Name", "Topology", "Nodes", "Shape", "Distinct").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == -1:
				return styleHeader
			case col == 0:
				return StyleNumber
			case col == 4:
				return StyleDim
			}
			return StyleValue
		}).
		Render()
}

// bindingExtras summarizes the kind-specific parameters of b.
func bindingExtras(b suite.Binding) string {
	var parts []string
	if !b.Components.IsZero() {
		parts = append(parts, "components="+b.Components.String())
	}
	if b.MinDegree != 0 || b.MaxDegree != 0 {
		parts = append(parts, fmt.Sprintf("degree=[%d,%d]", b.MinDegree, b.MaxDegree))
	}
	if !b.Rays.IsZero() {
		parts = append(parts, "rays="+b.Rays.String())
	}
	if b.MaxRayLength != 0 {
		parts = append(parts, "max_ray_length="+strconv.Itoa(b.MaxRayLength))
	}
	return strings.Join(parts, " ")
}
