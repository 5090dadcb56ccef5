package content

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/adrg/frontmatter"

	"github.com/Charl-AI/Charl-AI.github.io/internal/model"
)

// dateFormats are tried in order when parsing a front-matter date.
var dateFormats = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseDate parses a front-matter date string. An empty string is not an
// error and yields the zero time; anything else must match one of the
// accepted formats.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, nil
	}
	for _, format := range dateFormats {
		if t, err := time.Parse(format, s); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized date %q (want YYYY-MM-DD or RFC3339)", s)
}

// LoadPage reads and parses the content file at rel below contentDir. A file
// without a front-matter block parses successfully with zero-valued metadata;
// a present but malformed block, or a malformed date, is an error.
func LoadPage(contentDir, rel string) (*model.Page, error) {
	src := filepath.Join(contentDir, rel)
	data, err := os.ReadFile(src)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rel, err)
	}

	var matter model.FrontMatter
	body, err := frontmatter.Parse(bytes.NewReader(data), &matter)
	if err != nil {
		return nil, fmt.Errorf("parsing front-matter of %s: %w", rel, err)
	}

	published, err := ParseDate(matter.Date)
	if err != nil {
		return nil, fmt.Errorf("front-matter of %s: %w", rel, err)
	}

	return &model.Page{
		RelPath:    rel,
		SourcePath: src,
		Matter:     matter,
		Published:  published,
		Body:       body,
	}, nil
}
