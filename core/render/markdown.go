// Package render provides export formats for normalized field sets.
// This file implements the Markdown renderer, which converts each field's
// sanitized HTML back into Markdown under a heading named after the field.
package render

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/gaurav-prasanna/mixnorm/core"
)

// MarkdownRenderer writes every field as a Markdown section.
type MarkdownRenderer struct{}

// NewMarkdownRenderer creates a MarkdownRenderer.
func NewMarkdownRenderer() *MarkdownRenderer {
	return &MarkdownRenderer{}
}

// Render emits fields in key order.
func (r *MarkdownRenderer) Render(outputs map[string]core.NormalizedContent) ([]byte, error) {
	var buf strings.Builder
	for i, key := range sortedKeys(outputs) {
		md, err := toMarkdown(outputs[key].HTML)
		if err != nil {
			return nil, fmt.Errorf("field %s: %w", key, err)
		}
		if i > 0 {
			buf.WriteString("\n\n")
		}
		fmt.Fprintf(&buf, "## %s\n\n%s", key, md)
	}
	if buf.Len() > 0 {
		buf.WriteString("\n")
	}
	return []byte(buf.String()), nil
}

// Extension returns the file extension for Markdown output.
func (r *MarkdownRenderer) Extension() string {
	return ".md"
}

// toMarkdown converts a sanitized HTML fragment into Markdown.
func toMarkdown(html string) (string, error) {
	md, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("converting HTML to markdown: %w", err)
	}
	return strings.TrimSpace(md), nil
}

func sortedKeys(outputs map[string]core.NormalizedContent) []string {
	return slices.Sorted(maps.Keys(outputs))
}
