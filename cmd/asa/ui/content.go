package ui

import (
	"strings"

	md "github.com/JohannesKaufmann/html-to-markdown"
	"github.com/charmbracelet/glamour"
)

// ContentRenderer turns the API's rich-text HTML bodies into styled
// terminal output: HTML to markdown, then glamour for the terminal.
type ContentRenderer struct {
	converter *md.Converter
	term      *glamour.TermRenderer
}

// NewContentRenderer builds a renderer wrapping at width for the given
// theme.
func NewContentRenderer(width int, dark bool) *ContentRenderer {
	style := "light"
	if dark {
		style = "dark"
	}
	if width <= 0 {
		width = 80
	}
	term, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	return &ContentRenderer{
		converter: md.NewConverter("", true, nil),
		term:      term,
	}
}

// ToMarkdown converts an HTML body to markdown, falling back to the raw
// text when conversion fails.
func (r *ContentRenderer) ToMarkdown(html string) string {
	if strings.TrimSpace(html) == "" {
		return ""
	}
	markdown, err := r.converter.ConvertString(html)
	if err != nil {
		return html
	}
	return markdown
}

// Render converts and styles an HTML body for the detail pane. Recovers
// from renderer panics by returning the plain conversion.
func (r *ContentRenderer) Render(html string) (result string) {
	markdown := r.ToMarkdown(html)
	defer func() {
		if rec := recover(); rec != nil {
			result = markdown
		}
	}()
	if r.term == nil || markdown == "" {
		return markdown
	}
	styled, err := r.term.Render(markdown)
	if err != nil {
		return markdown
	}
	return styled
}
