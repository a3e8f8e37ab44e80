// Package faq turns loosely shaped FAQ payloads into core.FaqContent and
// renders that canonical form as HTML and as a plain-text transcript.
package faq

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
)

const fallbackQuestion = "FAQ Item"

// Keys probed, in priority order.
var (
	entryListKeys   = []string{"entries", "items", "faq", "questions"}
	sectionListKeys = []string{"sections", "groups"}
	questionKeys    = []string{"question", "title"}
	answerKeys      = []string{"answerHtml", "answer", "answer_text", "content", "body", "description"}
	sectionTitleKey = []string{"title", "name", "heading", "label"}
	nestedTextKeys  = []string{"html", "plain", "text", "value", "content"}
)

// AnswerNormalizer runs an answer through the rich-text path.
type AnswerNormalizer interface {
	NormalizeRichText(raw string) core.NormalizedContent
}

// Coercer converts arbitrary FAQ payloads into core.FaqContent.
type Coercer struct {
	answers AnswerNormalizer
}

// New creates a Coercer normalizing answers with the given normalizer.
func New(answers AnswerNormalizer) *Coercer {
	return &Coercer{answers: answers}
}

// Coerce accepts a string (plain or JSON), a list of entries, an object
// holding entry and section lists, or any Go value that marshals into one
// of those, and returns the canonical structure. It never fails: input it
// cannot read becomes a single entry.
func (c *Coercer) Coerce(value any) core.FaqContent {
	return c.coerce(generic(value))
}

func (c *Coercer) coerce(v any) core.FaqContent {
	switch val := v.(type) {
	case nil:
		return empty()
	case string:
		return c.fromString(val)
	case []any:
		return core.FaqContent{Entries: c.entries(val, 0)}
	case map[string]any:
		return c.fromObject(val)
	default:
		return c.fromString(toText(val))
	}
}

func (c *Coercer) fromString(s string) core.FaqContent {
	s = strings.TrimSpace(s)
	if s == "" {
		return empty()
	}
	if strings.HasPrefix(s, "{") || strings.HasPrefix(s, "[") {
		var parsed any
		if err := json.Unmarshal([]byte(s), &parsed); err == nil {
			return c.coerce(parsed)
		}
	}
	return core.FaqContent{Entries: []core.FaqEntry{c.build("", fallbackQuestion, s, 0, 1)}}
}

func (c *Coercer) fromObject(m map[string]any) core.FaqContent {
	out := empty()

	foundEntries := false
	for _, key := range entryListKeys {
		val, ok := m[key]
		if !ok || val == nil {
			continue
		}
		foundEntries = true
		if list, isList := val.([]any); isList {
			out.Entries = c.entries(list, 0)
		} else {
			nested := c.coerce(val)
			out.Entries = nested.Entries
			out.Sections = nested.Sections
		}
		break
	}

	foundSections := false
	for _, key := range sectionListKeys {
		list, ok := m[key].([]any)
		if !ok {
			continue
		}
		foundSections = true
		for i, el := range list {
			obj, isObj := el.(map[string]any)
			if !isObj {
				continue
			}
			if section, keep := c.section(obj, i+1); keep {
				out.Sections = append(out.Sections, section)
			}
		}
		break
	}

	if !foundEntries && !foundSections {
		if entry, ok := c.entry(m, 0, 1); ok {
			out.Entries = append(out.Entries, entry)
		}
		return out
	}

	seen := make(map[string]bool, len(out.Entries))
	for _, e := range out.Entries {
		seen[e.ID] = true
	}
	for _, section := range out.Sections {
		for _, e := range section.Entries {
			if !seen[e.ID] {
				seen[e.ID] = true
				out.Entries = append(out.Entries, e)
			}
		}
	}
	return out
}

func (c *Coercer) section(m map[string]any, index int) (core.FaqSection, bool) {
	section := core.FaqSection{
		ID:    idString(m["id"]),
		Title: firstText(m, sectionTitleKey...),
	}
	if section.ID == "" {
		section.ID = fmt.Sprintf("faq-section-%d", index)
	}
	if section.Title == "" {
		section.Title = fmt.Sprintf("Section %d", index)
	}

	for _, key := range entryListKeys {
		if list, ok := m[key].([]any); ok {
			section.Entries = c.entries(list, index)
			break
		}
	}
	return section, len(section.Entries) > 0
}

// entries coerces each list element; sectionIndex 0 means unsectioned.
func (c *Coercer) entries(list []any, sectionIndex int) []core.FaqEntry {
	out := make([]core.FaqEntry, 0, len(list))
	for i, el := range list {
		if entry, ok := c.entry(el, sectionIndex, i+1); ok {
			out = append(out, entry)
		}
	}
	return out
}

func (c *Coercer) entry(el any, sectionIndex, pos int) (core.FaqEntry, bool) {
	switch val := el.(type) {
	case nil, []any:
		return core.FaqEntry{}, false
	case map[string]any:
		question := firstText(val, questionKeys...)
		answer := firstText(val, answerKeys...)
		if question == "" && answer == "" {
			return core.FaqEntry{}, false
		}
		return c.build(idString(val["id"]), question, answer, sectionIndex, pos), true
	default:
		answer := toText(val)
		if answer == "" {
			return core.FaqEntry{}, false
		}
		return c.build("", "", answer, sectionIndex, pos), true
	}
}

func (c *Coercer) build(id, question, answer string, sectionIndex, pos int) core.FaqEntry {
	if id == "" {
		id = entryID(sectionIndex, pos)
	}
	if question == "" {
		question = fmt.Sprintf("Question %d", pos)
	}
	normalized := c.answers.NormalizeRichText(answer)
	return core.FaqEntry{
		ID:          id,
		Question:    question,
		AnswerHTML:  normalized.HTML,
		AnswerPlain: normalized.Plain,
	}
}

func entryID(sectionIndex, pos int) string {
	if sectionIndex == 0 {
		return fmt.Sprintf("faq-entry-%d", pos)
	}
	return fmt.Sprintf("faq-section-%d-entry-%d", sectionIndex, pos)
}

func empty() core.FaqContent {
	return core.FaqContent{Entries: []core.FaqEntry{}}
}

// generic reduces typed Go values to the shapes encoding/json produces.
func generic(v any) any {
	switch val := v.(type) {
	case nil, string, bool, float64, json.Number, []any, map[string]any:
		return val
	case []byte:
		return string(val)
	case json.RawMessage:
		return string(val)
	case int:
		return float64(val)
	case int64:
		return float64(val)
	}

	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprint(v)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		return string(data)
	}
	return out
}

func firstText(m map[string]any, keys ...string) string {
	for _, key := range keys {
		if s := toText(m[key]); s != "" {
			return s
		}
	}
	return ""
}

// toText renders a scalar as text. Objects contribute their first
// well-known text property.
func toText(v any) string {
	switch val := v.(type) {
	case string:
		return strings.TrimSpace(val)
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case json.Number:
		return val.String()
	case bool:
		return strconv.FormatBool(val)
	case map[string]any:
		return firstText(val, nestedTextKeys...)
	default:
		return ""
	}
}

func idString(v any) string {
	switch val := v.(type) {
	case string, float64, json.Number:
		return toText(val)
	default:
		return ""
	}
}
