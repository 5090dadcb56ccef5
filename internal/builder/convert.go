package builder

import (
	"bytes"
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"

	"github.com/Charl-AI/Charl-AI.github.io/internal/content"
	"github.com/Charl-AI/Charl-AI.github.io/internal/logger"
	"github.com/Charl-AI/Charl-AI.github.io/internal/model"
)

// convertOne renders a single content file to its mirrored destination. The
// destination is written atomically: the rendered page goes to a temp file
// in the destination directory and is renamed into place on success, so a
// failed conversion never leaves a truncated output file behind.
func (b *Builder) convertOne(rel string) error {
	page, err := content.LoadPage(b.cfg.ContentDir, rel)
	if err != nil {
		return fmt.Errorf("converting %s: %w", rel, err)
	}

	reader := text.NewReader(page.Body)
	doc := b.md.Parser().Parse(reader)

	var toc []model.Heading
	if page.Matter.GenerateTOC {
		toc = collectHeadings(doc, page.Body)
	}

	var body bytes.Buffer
	if err := b.md.Renderer().Render(&body, page.Body, doc); err != nil {
		return fmt.Errorf("converting %s: %w", rel, err)
	}

	dst := b.OutputPath(rel)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("converting %s: %w", rel, err)
	}

	data := b.pageData(page, toc, template.HTML(body.String()))
	if err := b.writeAtomic(dst, data); err != nil {
		return fmt.Errorf("converting %s: %w", rel, err)
	}

	logger.Debug("built %s -> %s", rel, dst)
	return nil
}

func (b *Builder) writeAtomic(dst string, data model.PageData) error {
	tmp, err := os.CreateTemp(filepath.Dir(dst), ".build-*")
	if err != nil {
		return err
	}
	if err := b.tmpl.ExecuteTemplate(tmp, baseLayout, data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	if err := os.Rename(tmp.Name(), dst); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return nil
}

// pageData fills the template context, applying site-wide defaults for any
// front-matter key the page omits.
func (b *Builder) pageData(page *model.Page, toc []model.Heading, body template.HTML) model.PageData {
	title := page.Matter.Title
	if title == "" {
		title = b.cfg.DefaultTitle
	}
	if title == "" {
		title = content.TitleFromPath(page.RelPath)
	}
	subtitle := page.Matter.Subtitle
	if subtitle == "" {
		subtitle = b.cfg.DefaultSubtitle
	}
	date := ""
	if !page.Published.IsZero() {
		date = page.Published.Format("2006-01-02")
	}
	return model.PageData{
		SiteTitle:  b.cfg.SiteTitle,
		SiteAuthor: b.cfg.SiteAuthor,
		BaseURL:    b.cfg.BaseURL,
		Title:      title,
		Subtitle:   subtitle,
		Date:       date,
		WordCount:  page.Matter.WordCount,
		TOC:        toc,
		Content:    body,
	}
}

// collectHeadings walks the parsed document and records every heading with
// the ID assigned by the auto-heading-ID parser option, so TOC anchors match
// the rendered output.
func collectHeadings(doc ast.Node, src []byte) []model.Heading {
	var toc []model.Heading
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		h, ok := n.(*ast.Heading)
		if !ok {
			return ast.WalkContinue, nil
		}
		id := ""
		if v, ok := h.AttributeString("id"); ok {
			if raw, ok := v.([]byte); ok {
				id = string(raw)
			}
		}
		toc = append(toc, model.Heading{
			Level: h.Level,
			ID:    id,
			Text:  headingText(h, src),
		})
		return ast.WalkSkipChildren, nil
	})
	return toc
}

func headingText(n ast.Node, src []byte) string {
	var sb strings.Builder
	_ = ast.Walk(n, func(c ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering {
			if t, ok := c.(*ast.Text); ok {
				sb.Write(t.Segment.Value(src))
			}
		}
		return ast.WalkContinue, nil
	})
	return sb.String()
}
