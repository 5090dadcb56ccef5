// Package index regenerates the listing page from post front-matter. It is
// run by the author before a build; the build then converts the generated
// listing like any other content file.
package index

import (
	"bytes"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"sort"
	"strings"

	"github.com/Charl-AI/Charl-AI.github.io/internal/builder"
	"github.com/Charl-AI/Charl-AI.github.io/internal/config"
	"github.com/Charl-AI/Charl-AI.github.io/internal/content"
	"github.com/Charl-AI/Charl-AI.github.io/internal/logger"
	"github.com/Charl-AI/Charl-AI.github.io/internal/model"
)

// matter is the front-matter written to the generated listing page.
type matter struct {
	Title    string `yaml:"title"`
	Subtitle string `yaml:"subtitle,omitempty"`
}

// Generate scans one level into the posts section, extracts front-matter
// from every post, and writes the listing page to the configured index file.
// Posts are ordered by date descending; posts without a date sort last.
// Equal dates keep discovery order. A malformed front-matter block or date
// is a hard error: a wrong sort order is worse than no index. Returns the
// number of posts listed.
func Generate(cfg config.Config) (int, error) {
	postsRoot := filepath.Join(cfg.ContentDir, cfg.PostsDir)
	rels, err := content.Discover(postsRoot, 1)
	if err != nil {
		return 0, err
	}

	entries := make([]model.IndexEntry, 0, len(rels))
	for _, rel := range rels {
		page, err := content.LoadPage(postsRoot, rel)
		if err != nil {
			return 0, fmt.Errorf("indexing: %w", err)
		}
		title := page.Matter.Title
		if title == "" {
			title = content.TitleFromPath(rel)
		}
		mapped := strings.TrimSuffix(rel, filepath.Ext(rel)) + builder.OutputExt
		entries = append(entries, model.IndexEntry{
			Title:     title,
			Subtitle:  page.Matter.Subtitle,
			Date:      page.Published,
			WordCount: page.Matter.WordCount,
			Href:      "/" + path.Join(cfg.PostsDir, filepath.ToSlash(mapped)),
		})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Date.IsZero() {
			return false
		}
		if entries[j].Date.IsZero() {
			return true
		}
		return entries[i].Date.After(entries[j].Date)
	})

	doc, err := render(cfg, entries)
	if err != nil {
		return 0, err
	}

	out := filepath.Join(cfg.ContentDir, cfg.IndexFile)
	if err := os.WriteFile(out, doc, 0o644); err != nil {
		return 0, fmt.Errorf("writing index %s: %w", out, err)
	}
	logger.Debug("wrote index %s with %d entries", out, len(entries))
	return len(entries), nil
}

func render(cfg config.Config, entries []model.IndexEntry) ([]byte, error) {
	var body bytes.Buffer
	for _, e := range entries {
		fmt.Fprintf(&body, "## [%s](%s)\n\n", e.Title, e.Href)

		var meta []string
		if e.Subtitle != "" {
			meta = append(meta, fmt.Sprintf("*%s*", e.Subtitle))
		}
		if !e.Date.IsZero() {
			meta = append(meta, e.Date.Format("2006-01-02"))
		}
		if e.WordCount != "" {
			meta = append(meta, e.WordCount)
		}
		if len(meta) > 0 {
			fmt.Fprintf(&body, "%s\n\n", strings.Join(meta, " · "))
		}
	}

	return content.AppendMatter(matter{
		Title:    "Posts",
		Subtitle: cfg.DefaultSubtitle,
	}, body.String())
}
