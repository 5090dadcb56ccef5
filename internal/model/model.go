package model

import "time"

// FrontMatter is the recognized metadata block at the top of a content file.
// Every key is optional; absent keys fall back to site-wide defaults.
type FrontMatter struct {
	Title       string `yaml:"title"`
	Subtitle    string `yaml:"subtitle"`
	Date        string `yaml:"date"`
	WordCount   string `yaml:"word_count"`
	GenerateTOC bool   `yaml:"generate_toc"`
}

// Page is one parsed content file, ready for conversion.
type Page struct {
	// RelPath is the path relative to the content root, e.g. "posts/foo.md".
	RelPath    string
	SourcePath string
	Matter     FrontMatter
	// Published is the parsed form of Matter.Date; zero when the file
	// carries no date.
	Published time.Time
	Body      []byte
}

// IndexEntry is the summary record extracted from one post, used only to
// render the listing page.
type IndexEntry struct {
	Title     string
	Subtitle  string
	Date      time.Time
	WordCount string
	// Href is the root-relative path of the post's rendered output file.
	Href string
}

// Heading is one table-of-contents entry collected from a page body.
type Heading struct {
	Level int
	ID    string
	Text  string
}
