package index

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Charl-AI/Charl-AI.github.io/internal/config"
	"github.com/Charl-AI/Charl-AI.github.io/internal/content"
)

func newContentTree(t *testing.T) config.Config {
	t.Helper()
	root := t.TempDir()
	cfg := config.Config{
		ContentDir: filepath.Join(root, "content"),
		PostsDir:   "posts",
		IndexFile:  "posts.md",
	}
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.ContentDir, cfg.PostsDir), 0o755))
	return cfg
}

func writePost(t *testing.T, cfg config.Config, name, body string) {
	t.Helper()
	path := filepath.Join(cfg.ContentDir, cfg.PostsDir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
}

func readIndex(t *testing.T, cfg config.Config) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(cfg.ContentDir, cfg.IndexFile))
	require.NoError(t, err)
	return string(data)
}

func TestGenerateSortsByDateDescending(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "middle.md", "---\ntitle: Middle\ndate: 2023-01-01\n---\n\nm\n")
	writePost(t, cfg, "newest.md", "---\ntitle: Newest\ndate: 2024-06-15\n---\n\nn\n")
	writePost(t, cfg, "oldest.md", "---\ntitle: Oldest\ndate: 2022-03-03\n---\n\no\n")

	n, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	idx := readIndex(t, cfg)
	newest := strings.Index(idx, "Newest")
	middle := strings.Index(idx, "Middle")
	oldest := strings.Index(idx, "Oldest")
	require.NotEqual(t, -1, newest)
	require.NotEqual(t, -1, middle)
	require.NotEqual(t, -1, oldest)
	assert.Less(t, newest, middle)
	assert.Less(t, middle, oldest)
}

func TestGenerateStableTieBreak(t *testing.T) {
	cfg := newContentTree(t)
	// Same date: discovery (lexical) order must be preserved.
	writePost(t, cfg, "aaa.md", "---\ntitle: Alpha Post\ndate: 2024-01-01\n---\n\na\n")
	writePost(t, cfg, "bbb.md", "---\ntitle: Bravo Post\ndate: 2024-01-01\n---\n\nb\n")

	_, err := Generate(cfg)
	require.NoError(t, err)

	idx := readIndex(t, cfg)
	assert.Less(t, strings.Index(idx, "Alpha Post"), strings.Index(idx, "Bravo Post"))
}

func TestGenerateEntriesLinkToOutputPaths(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "hello-world.md", "---\ntitle: Hello World\ndate: 2024-01-01\nsubtitle: greetings\nword_count: ~500 words\n---\n\nhi\n")

	_, err := Generate(cfg)
	require.NoError(t, err)

	idx := readIndex(t, cfg)
	assert.Contains(t, idx, "[Hello World](/posts/hello-world.html)")
	assert.Contains(t, idx, "*greetings*")
	assert.Contains(t, idx, "2024-01-01")
	assert.Contains(t, idx, "~500 words")
}

func TestGenerateMalformedDateIsFatal(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "bad.md", "---\ntitle: Bad\ndate: not-a-date\n---\n\nx\n")

	_, err := Generate(cfg)
	assert.Error(t, err)
}

func TestGenerateToleratesMissingFrontMatter(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "dated.md", "---\ntitle: Dated\ndate: 2024-01-01\n---\n\nx\n")
	writePost(t, cfg, "plain-notes.md", "# Plain\n\nNo front-matter here.\n")

	n, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	// The undated post derives a title from its file name and sorts last.
	idx := readIndex(t, cfg)
	assert.Contains(t, idx, "Plain Notes")
	assert.Less(t, strings.Index(idx, "Dated"), strings.Index(idx, "Plain Notes"))
}

func TestGenerateScansOneLevelOnly(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "top.md", "---\ntitle: Top\ndate: 2024-01-01\n---\n\nx\n")
	nested := filepath.Join(cfg.ContentDir, cfg.PostsDir, "drafts")
	require.NoError(t, os.MkdirAll(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "draft.md"),
		[]byte("---\ntitle: Draft\ndate: 2024-02-02\n---\n\nx\n"), 0o644))

	n, err := Generate(cfg)
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.NotContains(t, readIndex(t, cfg), "Draft")
}

func TestGeneratedIndexIsAValidContentFile(t *testing.T) {
	cfg := newContentTree(t)
	writePost(t, cfg, "one.md", "---\ntitle: One\ndate: 2024-01-01\n---\n\nx\n")

	_, err := Generate(cfg)
	require.NoError(t, err)

	page, err := content.LoadPage(cfg.ContentDir, cfg.IndexFile)
	require.NoError(t, err)
	assert.Equal(t, "Posts", page.Matter.Title)
}
