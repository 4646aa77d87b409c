package cli

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/format"
	"github.com/matzehuels/topogen/pkg/graph"
)

// readGraphs parses every Solution-format graph in the file at path, or in
// the command's standard input when path is empty or "-".
func readGraphs(cmd *cobra.Command, path string) ([]*graph.Graph, error) {
	var r io.Reader = cmd.InOrStdin()
	if path != "" && path != stdinArg {
		f, err := os.Open(path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil, perrors.Wrap(perrors.ErrCodeNotFound, err, "input %s", path)
			}
			return nil, perrors.Wrap(perrors.ErrCodeInvalidPath, err, "open %s", path)
		}
		defer f.Close()
		r = f
	}

	graphs, err := format.ReadSolutions(r)
	if err != nil {
		return nil, perrors.Wrap(perrors.ErrCodeInvalidFormat, err, "parse solution input")
	}
	return graphs, nil
}

// inputArg returns the optional file argument of a command.
func inputArg(args []string) string {
	if len(args) == 0 {
		return stdinArg
	}
	return args[0]
}
