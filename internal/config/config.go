package config

import "time"

// Config holds all site-wide build settings, loaded once at startup from
// config.yaml, environment variables (BLOG_ prefix), or defaults.
type Config struct {
	SiteTitle  string `mapstructure:"siteTitle"`
	SiteAuthor string `mapstructure:"siteAuthor"`
	BaseURL    string `mapstructure:"baseURL"`

	ContentDir string `mapstructure:"contentDir"`
	LayoutsDir string `mapstructure:"layoutsDir"`
	StaticDir  string `mapstructure:"staticDir"`
	OutputDir  string `mapstructure:"outputDir"`

	// PostsDir is the subsection of ContentDir scanned by index generation,
	// e.g. "posts" for content/posts.
	PostsDir string `mapstructure:"postsDir"`
	// IndexFile is where the generated listing page is written, relative to
	// ContentDir.
	IndexFile string `mapstructure:"indexFile"`

	// MaxDepth bounds source discovery; files nested deeper than this many
	// directories below ContentDir are skipped.
	MaxDepth int `mapstructure:"maxDepth"`
	// Workers caps build concurrency. Zero or negative means one worker per
	// CPU.
	Workers int `mapstructure:"workers"`
	// BuildTimeout aborts a build that runs longer than this. Zero means no
	// timeout.
	BuildTimeout time.Duration `mapstructure:"buildTimeout"`

	// DefaultTitle and DefaultSubtitle fill in for pages whose front-matter
	// omits those keys.
	DefaultTitle    string `mapstructure:"defaultTitle"`
	DefaultSubtitle string `mapstructure:"defaultSubtitle"`
}
