package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, root, rel string) {
	t.Helper()
	path := filepath.Join(root, rel)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte("# hello\n"), 0o644))
}

func TestDiscoverFindsMarkdownFiles(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "index.md")
	writeFile(t, root, "posts/first.md")
	writeFile(t, root, "posts/second.md")
	writeFile(t, root, "notes.txt")
	writeFile(t, root, "style.css")

	paths, err := Discover(root, 4)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		"index.md",
		filepath.Join("posts", "first.md"),
		filepath.Join("posts", "second.md"),
	}, paths)
}

func TestDiscoverEmptyRoot(t *testing.T) {
	paths, err := Discover(t.TempDir(), 4)
	require.NoError(t, err)
	assert.Empty(t, paths)
}

func TestDiscoverMissingRoot(t *testing.T) {
	_, err := Discover(filepath.Join(t.TempDir(), "nope"), 4)
	assert.Error(t, err)
}

func TestDiscoverDepthBound(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "top.md")
	writeFile(t, root, "a/one.md")
	writeFile(t, root, "a/b/two.md")
	writeFile(t, root, "a/b/c/three.md")

	paths, err := Discover(root, 2)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"top.md", filepath.Join("a", "one.md")}, paths)
}

func TestDiscoverSkipsSymlinks(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "real.md")

	outside := t.TempDir()
	writeFile(t, outside, "linked.md")
	if err := os.Symlink(filepath.Join(outside, "linked.md"), filepath.Join(root, "link.md")); err != nil {
		t.Skipf("symlinks not supported: %v", err)
	}
	require.NoError(t, os.Symlink(outside, filepath.Join(root, "linkdir")))

	paths, err := Discover(root, 4)
	require.NoError(t, err)
	assert.Equal(t, []string{"real.md"}, paths)
}

func TestDiscoverOrderIsDeterministic(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "b.md")
	writeFile(t, root, "a.md")
	writeFile(t, root, "c.md")

	first, err := Discover(root, 4)
	require.NoError(t, err)
	second, err := Discover(root, 4)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, []string{"a.md", "b.md", "c.md"}, first)
}
