package builder

import (
	"fmt"
	"os"
	"path/filepath"
)

// Clean removes the output directory tree. A missing directory is a no-op
// success. The path is refused outright when it resolves to the current
// directory or filesystem root, so a misconfigured outputDir can never
// delete source content.
func Clean(outputDir string) error {
	if outputDir == "" {
		return fmt.Errorf("output directory is not configured")
	}
	abs, err := filepath.Abs(outputDir)
	if err != nil {
		return fmt.Errorf("resolving output directory %q: %w", outputDir, err)
	}
	cwd, err := os.Getwd()
	if err != nil {
		return err
	}
	if abs == cwd || abs == filepath.Dir(abs) {
		return fmt.Errorf("refusing to remove %q", abs)
	}
	if err := os.RemoveAll(abs); err != nil {
		return fmt.Errorf("removing output directory %q: %w", abs, err)
	}
	return nil
}
