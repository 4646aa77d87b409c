package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/matzehuels/topogen/pkg/cache"
	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/graph"
	"github.com/matzehuels/topogen/pkg/render"
)

// renderOpts holds the flags of the render command.
type renderOpts struct {
	output   string
	layout   string
	detailed bool
	walk     bool
	format   string
	index    int
	cacheDir string
	noCache  bool
}

// svgCacheTTL bounds how long rendered SVGs stay in the cache.
const svgCacheTTL = 30 * 24 * time.Hour

// renderCommand creates the render command for drawing a graph.
func (c *CLI) renderCommand() *cobra.Command {
	var opts renderOpts

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Draw a Solution-format graph as SVG",
		Long: `Render reads graphs in Solution format from a file or standard input
and draws one of them with Graphviz. With --walk, nodes are annotated with their
depth-first visit position from node 0 and unreachable nodes are dashed.`,
		Example: `  topogen show 6 --seed 42 -f solution | topogen render -o starfish.svg
  topogen render solution_inputs/10.in --graph 3 --walk -o path.svg
  topogen render solution_inputs/4.in --format dot`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, inputArg(args), opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().StringVar(&opts.layout, "layout", render.DefaultLayout, "Graphviz layout engine")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show node degrees")
	cmd.Flags().BoolVar(&opts.walk, "walk", false, "annotate the depth-first visit order from node 0")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "svg", "output format: svg, dot")
	cmd.Flags().IntVar(&opts.index, "graph", 0, "index of the graph to draw when the input holds several")
	cmd.Flags().StringVar(&opts.cacheDir, "cache-dir", "", "SVG cache directory (default user cache dir)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "always run the Graphviz layout")
	_ = cmd.RegisterFlagCompletionFunc("layout", cobra.FixedCompletions(
		[]string{"neato", "dot", "circo", "fdp", "sfdp", "twopi"}, cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func runRender(cmd *cobra.Command, input string, opts renderOpts) error {
	ctx := cmd.Context()
	logger := loggerFromContext(ctx)

	if opts.format != "svg" && opts.format != formatDOT {
		return perrors.New(perrors.ErrCodeInvalidInput, "unknown format %q (want svg, dot)", opts.format)
	}

	graphs, err := readGraphs(cmd, input)
	if err != nil {
		return err
	}
	if opts.index < 0 || opts.index >= len(graphs) {
		return perrors.New(perrors.ErrCodeInvalidRange, "graph %d out of range: input holds %d graphs", opts.index, len(graphs))
	}
	g := graphs[opts.index]
	logger.Debug("rendering graph", "graph", opts.index, "nodes", g.NodeCount(), "edges", g.EdgeCount())

	ropts := render.Options{Detailed: opts.detailed, Layout: opts.layout}
	if opts.walk {
		order, err := graph.Walk(g, 0)
		if err != nil {
			return err
		}
		ropts.Order = order
	}
	dot := render.ToDOT(g, ropts)

	data := []byte(dot)
	if opts.format == "svg" {
		if data, err = renderSVGCached(ctx, dot, opts); err != nil {
			return err
		}
	}

	if opts.output == "" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return perrors.Wrap(perrors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess("Rendered graph %d", opts.index)
	printFile(opts.output)
	return nil
}

// renderSVGCached returns the SVG for dot, reusing a cached rendering when
// one exists. Cache failures are logged and never fail the render.
func renderSVGCached(ctx context.Context, dot string, opts renderOpts) ([]byte, error) {
	logger := loggerFromContext(ctx)
	store := openSVGCache(ctx, opts)
	defer store.Close()

	key := cache.Key("svg", dot)
	if svg, ok, err := store.Get(ctx, key); err != nil {
		logger.Warn("svg cache read failed", "err", err)
	} else if ok {
		logger.Debug("svg cache hit", "key", key)
		return svg, nil
	}

	spin := newSpinnerWithContext(ctx, "Rendering...")
	spin.Start()
	svg, err := render.RenderSVG(ctx, dot)
	spin.Stop()
	if err != nil {
		return nil, fmt.Errorf("render svg: %w", err)
	}

	if err := store.Set(ctx, key, svg, svgCacheTTL); err != nil {
		logger.Warn("svg cache write failed", "err", err)
	}
	return svg, nil
}

func openSVGCache(ctx context.Context, opts renderOpts) cache.Cache {
	if opts.noCache {
		return cache.NullCache{}
	}
	dir := opts.cacheDir
	if dir == "" {
		base, err := cache.DefaultDir()
		if err != nil {
			loggerFromContext(ctx).Debug("no user cache dir", "err", err)
			return cache.NullCache{}
		}
		dir = filepath.Join(base, "svg")
	}
	fc, err := cache.NewFileCache(dir)
	if err != nil {
		loggerFromContext(ctx).Warn("svg cache unavailable", "dir", dir, "err", err)
		return cache.NullCache{}
	}
	return fc
}
