package cli

import (
	"strconv"

	"github.com/spf13/cobra"

	perrors "github.com/matzehuels/topogen/pkg/errors"
	"github.com/matzehuels/topogen/pkg/pipeline"
)

// verifyCommand creates the verify command for checking a generated run.
func (c *CLI) verifyCommand() *cobra.Command {
	var out, manifest, configPath, suitePath string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Regenerate a run from its manifest and compare digests",
		Long: `Verify reads manifest.json, regenerates every recorded test from the
recorded seed and compares the SHA-256 digests of the in-memory renderings and
of the files on disk. Any mismatch makes the command fail.`,
		Example: `  topogen verify -o build/
  topogen verify --manifest build/manifest.json --suite suite.toml`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			req, _, err := requestFromFlags(configPath, suitePath, out)
			if err != nil {
				return err
			}
			req.Logger = c.Logger
			if err := req.ValidateAndSetDefaults(); err != nil {
				return err
			}
			if manifest == "" {
				manifest = req.ManifestPath()
			}
			m, err := pipeline.ReadManifest(manifest)
			if err != nil {
				return err
			}

			spin := newSpinnerWithContext(ctx, "Verifying "+strconv.Itoa(len(m.Cases))+" tests...")
			spin.Start()
			mismatches, err := c.newRunner().Verify(ctx, req, m)
			spin.Stop()
			if err != nil {
				return err
			}

			if len(mismatches) == 0 {
				printSuccess("Verified %s tests (run %s)",
					StyleNumber.Render(strconv.Itoa(len(m.Cases))), StyleDim.Render(m.RunID))
				return nil
			}
			for _, mm := range mismatches {
				printError("%s", mm)
			}
			return perrors.New(perrors.ErrCodeInvalidFormat, "%d mismatches in run %s", len(mismatches), m.RunID)
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "", "output root directory of the run")
	cmd.Flags().StringVar(&manifest, "manifest", "", "manifest path (default <out>/manifest.json)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "TOML run config")
	cmd.Flags().StringVar(&suitePath, "suite", "", "TOML suite file (default built-in suite)")

	return cmd
}
