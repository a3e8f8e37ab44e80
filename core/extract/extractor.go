// Package extract reduces literal HTML input to a fragment. Whole documents
// pasted into a rich-text field lose their <html>, <head> and <body>
// wrappers along with elements that never carry field content.
package extract

import (
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// noiseSelectors are removed from documents before the body is taken.
var noiseSelectors = []string{
	"script", "style", "noscript", "template",
	"iframe", "object", "embed",
	"form", "button", "input", "select", "textarea",
}

var documentTagRegex = regexp.MustCompile(`(?i)<(!doctype|html|head|body)[\s>]`)

// IsDocument reports whether s carries document-level wrappers.
func IsDocument(s string) bool {
	return documentTagRegex.MatchString(s)
}

// Fragment returns the body content of a full HTML document. Input without
// document wrappers is returned unchanged, as is input that fails to parse.
func Fragment(s string) string {
	if !IsDocument(s) {
		return s
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return s
	}

	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	body, err := doc.Find("body").First().Html()
	if err != nil {
		return s
	}
	return strings.TrimSpace(body)
}
