// Package normalize is the entry point of the content engine. It routes a
// raw field value and its declared type to the matching converter,
// sanitizes the result and derives the plain-text projection and counts.
//
// An Engine holds no mutable state after New returns; one instance can
// serve any number of concurrent callers.
package normalize

import (
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/gaurav-prasanna/mixnorm/core/extract"
	"github.com/gaurav-prasanna/mixnorm/core/faq"
	"github.com/gaurav-prasanna/mixnorm/core/markup"
	"github.com/gaurav-prasanna/mixnorm/core/sanitize"
	"github.com/gaurav-prasanna/mixnorm/core/text"
	"github.com/rs/zerolog"
)

// Engine normalizes field content.
type Engine struct {
	sanitizer core.Sanitizer
	logger    zerolog.Logger
	faq       *faq.Coercer
}

// Option configures an Engine.
type Option func(*Engine)

// WithSanitizer replaces the default bluemonday sanitizer.
func WithSanitizer(s core.Sanitizer) Option {
	return func(e *Engine) {
		e.sanitizer = s
	}
}

// WithLogger sets the logger used for repairs and recovered failures.
func WithLogger(l zerolog.Logger) Option {
	return func(e *Engine) {
		e.logger = l
	}
}

// New creates an Engine. Without options it sanitizes with bluemonday and
// does not log.
func New(opts ...Option) *Engine {
	e := &Engine{
		sanitizer: sanitize.New(),
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(e)
	}
	e.faq = faq.New(e)
	return e
}

// NormalizeRichText converts markdown, literal HTML or plain text into
// sanitized HTML. Markdown is detected first; input carrying an HTML tag is
// kept as HTML; anything else goes through the plain-text heuristics.
func (e *Engine) NormalizeRichText(raw string) core.NormalizedContent {
	if strings.TrimSpace(raw) == "" {
		return emptyContent(core.FieldRichText)
	}

	var html string
	switch {
	case markup.IsLikelyMarkdown(raw):
		html = markup.MarkdownToHTML(raw)
	case markup.ContainsHTMLTag(raw):
		html = extract.Fragment(raw)
	default:
		html = markup.PlainTextToHTML(raw)
	}
	return e.finish(e.sanitize(html))
}

// NormalizePlainText promotes plain text into sanitized HTML.
func (e *Engine) NormalizePlainText(raw string) core.NormalizedContent {
	if strings.TrimSpace(raw) == "" {
		return emptyContent(core.FieldPlainText)
	}
	return e.finish(e.sanitize(markup.PlainTextToHTML(raw)))
}

// NormalizeFAQ coerces any FAQ payload and renders it. The plain field is
// the blank-line separated transcript of the FAQ.
func (e *Engine) NormalizeFAQ(value any) core.NormalizedContent {
	content := e.faq.Coerce(value)
	plain := faq.RenderPlain(content)
	words, chars := text.Count(plain)
	return core.NormalizedContent{
		HTML:      e.sanitize(faq.RenderHTML(content)),
		Plain:     plain,
		WordCount: words,
		CharCount: chars,
		FAQ:       &content,
	}
}

// NormalizeFieldContent routes raw by its declared field type. Unknown
// types are treated as plain text.
func (e *Engine) NormalizeFieldContent(raw string, fieldType core.FieldType) core.NormalizedContent {
	kind := core.ParseFieldType(string(fieldType))
	if strings.TrimSpace(raw) == "" {
		return emptyContent(kind)
	}

	switch kind {
	case core.FieldFAQ:
		return e.NormalizeFAQ(raw)
	case core.FieldRichText:
		return e.NormalizeRichText(raw)
	default:
		return e.NormalizePlainText(raw)
	}
}

// NormalizeOutputsMap normalizes every entry of outputs against the type
// declared for its key in fields. Keys without a definition are plain text.
// The result has exactly the keys of outputs.
func (e *Engine) NormalizeOutputsMap(outputs map[string]any, fields []core.FieldDefinition) map[string]core.NormalizedContent {
	types := make(map[string]core.FieldType, len(fields))
	for _, f := range fields {
		if f.ID != "" {
			types[f.ID] = core.ParseFieldType(f.Type)
		}
	}

	out := make(map[string]core.NormalizedContent, len(outputs))
	for key, value := range outputs {
		fieldType, ok := types[key]
		if !ok {
			fieldType = core.FieldPlainText
		}
		out[key] = e.EnsureNormalizedContent(value, fieldType)
	}
	return out
}

// sanitize applies the content policy. A panicking sanitizer yields an
// empty paragraph instead of failing the caller.
func (e *Engine) sanitize(html string) (out string) {
	defer func() {
		if r := recover(); r != nil {
			e.logger.Warn().Interface("panic", r).Msg("sanitizer failed, substituting empty fragment")
			out = markup.EmptyParagraph
		}
	}()
	return e.sanitizer.Sanitize(html, core.ContentPolicy())
}

func (e *Engine) finish(html string) core.NormalizedContent {
	plain := text.Extract(html)
	words, chars := text.Count(plain)
	return core.NormalizedContent{
		HTML:      html,
		Plain:     plain,
		WordCount: words,
		CharCount: chars,
	}
}

func emptyContent(kind core.FieldType) core.NormalizedContent {
	out := core.NormalizedContent{HTML: markup.EmptyParagraph}
	if kind == core.FieldFAQ {
		out.FAQ = &core.FaqContent{Entries: []core.FaqEntry{}}
	}
	return out
}

var defaultEngine = New()

// NormalizeRichText normalizes raw with the default engine.
func NormalizeRichText(raw string) core.NormalizedContent {
	return defaultEngine.NormalizeRichText(raw)
}

// NormalizePlainText normalizes raw with the default engine.
func NormalizePlainText(raw string) core.NormalizedContent {
	return defaultEngine.NormalizePlainText(raw)
}

// NormalizeFAQ normalizes an FAQ payload with the default engine.
func NormalizeFAQ(value any) core.NormalizedContent {
	return defaultEngine.NormalizeFAQ(value)
}

// NormalizeFieldContent normalizes raw with the default engine.
func NormalizeFieldContent(raw string, fieldType core.FieldType) core.NormalizedContent {
	return defaultEngine.NormalizeFieldContent(raw, fieldType)
}

// EnsureNormalizedContent normalizes value with the default engine.
func EnsureNormalizedContent(value any, fieldType core.FieldType) core.NormalizedContent {
	return defaultEngine.EnsureNormalizedContent(value, fieldType)
}

// NormalizeOutputsMap normalizes outputs with the default engine.
func NormalizeOutputsMap(outputs map[string]any, fields []core.FieldDefinition) map[string]core.NormalizedContent {
	return defaultEngine.NormalizeOutputsMap(outputs, fields)
}
