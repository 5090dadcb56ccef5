// Package content discovers markdown source files under the content root and
// parses their front-matter.
package content

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// MarkdownExt is the recognized content file extension.
const MarkdownExt = ".md"

// Discover walks root and returns the relative paths of every markdown file,
// in lexical walk order. A file's depth is its number of path components
// below root; files deeper than maxDepth are skipped. Symlinks are never
// followed. A non-existent root is an error; an empty root yields zero paths.
func Discover(root string, maxDepth int) ([]string, error) {
	if _, err := os.Stat(root); err != nil {
		return nil, fmt.Errorf("content root %q: %w", root, err)
	}

	var paths []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return fmt.Errorf("walking %q: %w", path, err)
		}
		rel, relErr := filepath.Rel(root, path)
		if relErr != nil {
			return relErr
		}
		if rel == "." {
			return nil
		}
		// WalkDir never descends into symlinked directories; symlinked
		// files are filtered here so neither kind is followed.
		if d.Type()&fs.ModeSymlink != 0 {
			return nil
		}
		depth := strings.Count(rel, string(filepath.Separator)) + 1
		if d.IsDir() {
			if maxDepth > 0 && depth >= maxDepth {
				return fs.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(strings.ToLower(d.Name()), MarkdownExt) {
			return nil
		}
		paths = append(paths, rel)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return paths, nil
}
