// Package core defines the canonical content types and the boundaries of the
// normalization engine. Each collaborator (sanitizer, renderer) is a small
// interface so it can be swapped out in tests.
package core

import "strings"

// FieldType selects which converter path normalizes a value.
type FieldType string

const (
	FieldPlainText FieldType = "plainText"
	FieldRichText  FieldType = "richText"
	FieldFAQ       FieldType = "faq"
)

// ParseFieldType maps a caller-declared type tag onto a FieldType.
// Unknown or empty tags fall back to FieldPlainText.
func ParseFieldType(s string) FieldType {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "richtext", "rich-text", "html":
		return FieldRichText
	case "faq":
		return FieldFAQ
	default:
		return FieldPlainText
	}
}

// FieldDefinition is one entry of a content template's field list.
type FieldDefinition struct {
	ID   string `json:"id" yaml:"id"`
	Type string `json:"type" yaml:"type"`
}

// FaqEntry is a single question with its normalized answer.
type FaqEntry struct {
	ID          string `json:"id"`
	Question    string `json:"question"`
	AnswerHTML  string `json:"answerHtml"`
	AnswerPlain string `json:"answerPlain"`
}

// FaqSection groups entries under a title.
type FaqSection struct {
	ID      string     `json:"id"`
	Title   string     `json:"title"`
	Entries []FaqEntry `json:"entries"`
}

// FaqContent is the canonical FAQ structure.
// Entries holds every entry, flattened; Sections is optional grouping.
type FaqContent struct {
	Entries  []FaqEntry   `json:"entries"`
	Sections []FaqSection `json:"sections,omitempty"`
}

// NormalizedContent is the canonical output unit for one field.
type NormalizedContent struct {
	HTML      string      `json:"html"`
	Plain     string      `json:"plain"`
	WordCount int         `json:"wordCount"`
	CharCount int         `json:"charCount"`
	FAQ       *FaqContent `json:"faq,omitempty"`
}

// GeneratedOutputs is the storage container for a full set of fields.
type GeneratedOutputs struct {
	GeneratedOutputs map[string]NormalizedContent `json:"generatedOutputs"`
}

// Policy declares what the sanitizer may keep.
type Policy struct {
	AllowImages bool
	AllowLinks  bool
	AllowTables bool
}

// ContentPolicy returns the policy used for rich text, plain text and FAQ
// HTML alike.
func ContentPolicy() Policy {
	return Policy{AllowImages: false, AllowLinks: true, AllowTables: true}
}

// Sanitizer strips disallowed tags and attributes from an HTML fragment.
// Implementations must be safe for concurrent use.
type Sanitizer interface {
	Sanitize(html string, policy Policy) string
}

// Renderer converts a set of normalized fields into an export format.
type Renderer interface {
	Render(outputs map[string]NormalizedContent) ([]byte, error)
	// Extension returns the file extension for this renderer (e.g. ".md", ".pdf").
	Extension() string
}
