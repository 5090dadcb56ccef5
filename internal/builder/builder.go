// Package builder turns the content tree into a mirrored tree of
// self-contained HTML files.
package builder

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	gmhtml "github.com/yuin/goldmark/renderer/html"

	"github.com/Charl-AI/Charl-AI.github.io/internal/config"
)

// OutputExt is the extension of every generated file.
const OutputExt = ".html"

// baseLayout is the layout file executed for every page. It must exist
// directly in the layouts directory.
const baseLayout = "base.html"

// Builder converts content files using a shared markdown renderer and a
// shared set of layouts. It is safe for concurrent use: all fields are
// read-only after New.
type Builder struct {
	cfg  config.Config
	tmpl *template.Template
	md   goldmark.Markdown
}

// New parses the layouts and prepares the markdown renderer. The layouts
// directory must contain base.html; files under layouts/partials are parsed
// alongside it.
func New(cfg config.Config) (*Builder, error) {
	tmpl, err := loadLayouts(cfg.LayoutsDir)
	if err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
		),
		goldmark.WithRendererOptions(
			gmhtml.WithHardWraps(),
		),
	)

	return &Builder{cfg: cfg, tmpl: tmpl, md: md}, nil
}

func loadLayouts(dir string) (*template.Template, error) {
	base := filepath.Join(dir, baseLayout)
	if _, err := os.Stat(base); err != nil {
		return nil, fmt.Errorf("base layout %s: %w", base, err)
	}

	files := []string{base}
	partials, err := filepath.Glob(filepath.Join(dir, "partials", "*.html"))
	if err != nil {
		return nil, fmt.Errorf("listing partials in %s: %w", dir, err)
	}
	files = append(files, partials...)

	tmpl, err := template.ParseFiles(files...)
	if err != nil {
		return nil, fmt.Errorf("parsing layouts: %w", err)
	}
	return tmpl, nil
}

// OutputPath maps a content-relative source path to its destination below
// the output directory, swapping the markdown extension for OutputExt.
func (b *Builder) OutputPath(rel string) string {
	mapped := rel[:len(rel)-len(filepath.Ext(rel))] + OutputExt
	return filepath.Join(b.cfg.OutputDir, mapped)
}
