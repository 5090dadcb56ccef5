package model

import "html/template"

// PageData is the context handed to the base layout for every rendered page.
type PageData struct {
	SiteTitle  string
	SiteAuthor string
	BaseURL    string

	Title     string
	Subtitle  string
	Date      string
	WordCount string
	TOC       []Heading

	Content template.HTML
}
