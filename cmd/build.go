package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Charl-AI/Charl-AI.github.io/internal/builder"
)

var buildCmd = &cobra.Command{
	Use:   "build",
	Short: "Build the static site from content, layouts, and static assets",
	Long: `The build command converts every Markdown file under the content
directory into a self-contained HTML page at the mirrored path below the
output directory, applying the base layout and site metadata. Conversions
run in parallel; if any file fails, the remaining files are still built and
the command exits non-zero.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		b, err := builder.New(appConfig)
		if err != nil {
			return err
		}
		res, err := b.Build(cmd.Context())
		if res != nil {
			fmt.Printf("found %d files, built %d, failed %d\n", res.Found, res.Built, res.Failed)
		}
		if err != nil {
			return fmt.Errorf("build failed:\n%w", err)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(buildCmd)
}
