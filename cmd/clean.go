package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Charl-AI/Charl-AI.github.io/internal/builder"
)

var cleanCmd = &cobra.Command{
	Use:   "clean",
	Short: "Remove the build output directory",
	Long: `The clean command deletes the configured output directory and
everything below it. It never touches source content, and succeeds quietly
when the output directory does not exist.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := builder.Clean(appConfig.OutputDir); err != nil {
			return err
		}
		fmt.Printf("removed %s\n", appConfig.OutputDir)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(cleanCmd)
}
