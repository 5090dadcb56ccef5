package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/Charl-AI/Charl-AI.github.io/internal/content"
	"github.com/Charl-AI/Charl-AI.github.io/internal/model"
)

var newCmd = &cobra.Command{
	Use:   "new <title>",
	Short: "Scaffold a new post with populated front-matter",
	Args:  cobra.ExactArgs(1),

	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		title := args[0]
		slug := slugify(title)
		if slug == "" {
			return fmt.Errorf("cannot derive a file name from title %q", title)
		}

		dir := filepath.Join(appConfig.ContentDir, appConfig.PostsDir)
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("creating posts directory: %w", err)
		}
		dst := filepath.Join(dir, slug+content.MarkdownExt)
		if _, err := os.Stat(dst); err == nil {
			return fmt.Errorf("%s already exists", dst)
		}

		doc, err := content.AppendMatter(model.FrontMatter{
			Title: title,
			Date:  time.Now().Format("2006-01-02"),
		}, "")
		if err != nil {
			return err
		}
		if err := os.WriteFile(dst, doc, 0o644); err != nil {
			return fmt.Errorf("writing %s: %w", dst, err)
		}
		fmt.Printf("created %s\n", dst)
		return nil
	},
}

// slugify lowercases the title and replaces runs of non-alphanumeric
// characters with single hyphens.
func slugify(s string) string {
	var sb strings.Builder
	lastHyphen := true
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z' || r >= '0' && r <= '9':
			sb.WriteRune(r)
			lastHyphen = false
		case !lastHyphen:
			sb.WriteRune('-')
			lastHyphen = true
		}
	}
	return strings.Trim(sb.String(), "-")
}

func init() {
	rootCmd.AddCommand(newCmd)
}
