package utils

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"
)

// ValidateMarkdown checks that a generated explanation parses as
// Markdown. Goldmark is very permissive, so this is a basic sanity
// check before the text is handed to the frontend renderer.
func ValidateMarkdown(input string) bool {
	parser := goldmark.DefaultParser()
	reader := text.NewReader([]byte(input))
	doc := parser.Parse(reader)
	return doc != nil
}
