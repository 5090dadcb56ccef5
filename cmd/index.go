package cmd

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Charl-AI/Charl-AI.github.io/internal/index"
)

var indexCmd = &cobra.Command{
	Use:   "index",
	Short: "Regenerate the post listing page from front-matter",
	Long: `The index command scans one level into the posts section of the
content directory, reads each post's front-matter, and rewrites the listing
page sorted by date descending. Run it after adding or editing a post,
before the next build.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		n, err := index.Generate(appConfig)
		if err != nil {
			return err
		}
		fmt.Printf("indexed %d posts into %s\n", n, filepath.Join(appConfig.ContentDir, appConfig.IndexFile))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(indexCmd)
}
