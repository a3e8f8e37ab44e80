package normalize

import (
	"encoding/json"
	"fmt"
	"math"
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/tidwall/gjson"
)

// EnsureNormalizedContent accepts already normalized values unchanged and
// normalizes everything else. Objects carrying string html and plain plus
// numeric counts are trusted as they are; partial objects are repaired from
// whichever of html or plain they carry; FAQ fields with only a faq payload
// are coerced from it. Scalars are stringified and dispatched, with rich
// text first unwrapped from JSON envelopes.
func (e *Engine) EnsureNormalizedContent(value any, fieldType core.FieldType) core.NormalizedContent {
	kind := core.ParseFieldType(string(fieldType))

	switch v := value.(type) {
	case nil:
		return emptyContent(kind)
	case core.NormalizedContent:
		return v
	case *core.NormalizedContent:
		if v == nil {
			return emptyContent(kind)
		}
		return *v
	case map[string]any:
		return e.ensureObject(v, kind)
	case string:
		return e.ensureString(v, kind)
	case []byte:
		return e.ensureRaw(v, kind)
	case json.RawMessage:
		return e.ensureRaw(v, kind)
	}

	if kind == core.FieldFAQ {
		return e.NormalizeFAQ(value)
	}

	data, err := json.Marshal(value)
	if err != nil {
		return e.ensureString(fmt.Sprint(value), kind)
	}
	return e.ensureRaw(data, kind)
}

// ensureRaw handles JSON text: objects shaped like normalized content are
// inspected like decoded maps, anything else keeps its source bytes so
// envelopes are unwrapped in document order.
func (e *Engine) ensureRaw(data []byte, kind core.FieldType) core.NormalizedContent {
	var obj map[string]any
	if err := json.Unmarshal(data, &obj); err == nil && obj != nil {
		_, hasHTML := obj["html"]
		_, hasPlain := obj["plain"]
		if hasHTML || hasPlain || kind == core.FieldFAQ {
			return e.ensureObject(obj, kind)
		}
		return e.ensureString(string(data), kind)
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		return e.ensureString(s, kind)
	}
	return e.ensureString(string(data), kind)
}

func (e *Engine) ensureString(s string, kind core.FieldType) core.NormalizedContent {
	if kind == core.FieldRichText {
		s = ExtractFirstHTMLValue(s)
	}
	return e.NormalizeFieldContent(s, kind)
}

func (e *Engine) ensureObject(m map[string]any, kind core.FieldType) core.NormalizedContent {
	html, hasHTML := m["html"].(string)
	plain, hasPlain := m["plain"].(string)
	faqPayload, hasFAQ := m["faq"]
	hasFAQ = hasFAQ && faqPayload != nil
	words, hasWords := toCount(m["wordCount"])
	chars, hasChars := toCount(m["charCount"])

	if hasHTML && hasPlain && hasWords && hasChars {
		out := core.NormalizedContent{HTML: html, Plain: plain, WordCount: words, CharCount: chars}
		if kind == core.FieldFAQ && hasFAQ {
			content := e.faq.Coerce(faqPayload)
			out.FAQ = &content
		}
		return out
	}

	switch {
	case kind == core.FieldFAQ && hasFAQ:
		e.logger.Debug().Msg("rebuilding faq field from its faq payload")
		return e.NormalizeFAQ(faqPayload)
	case hasHTML && strings.TrimSpace(html) != "":
		e.logger.Debug().Bool("has_plain", hasPlain).Msg("repairing normalized value from html")
		if kind == core.FieldFAQ {
			return e.NormalizeFAQ(html)
		}
		return e.NormalizeRichText(html)
	case hasPlain && strings.TrimSpace(plain) != "":
		e.logger.Debug().Bool("has_html", hasHTML).Msg("repairing normalized value from plain")
		return e.NormalizeFieldContent(plain, kind)
	case hasHTML || hasPlain:
		return emptyContent(kind)
	}

	if kind == core.FieldFAQ {
		return e.NormalizeFAQ(m)
	}
	data, err := json.Marshal(m)
	if err != nil {
		return emptyContent(kind)
	}
	return e.ensureString(string(data), kind)
}

// toCount reads a non-negative whole number out of a decoded value.
func toCount(v any) (int, bool) {
	var f float64
	switch n := v.(type) {
	case int:
		return n, n >= 0
	case int64:
		return int(n), n >= 0
	case float64:
		f = n
	case json.Number:
		parsed, err := n.Float64()
		if err != nil {
			return 0, false
		}
		f = parsed
	default:
		return 0, false
	}
	if f < 0 || f != math.Trunc(f) {
		return 0, false
	}
	return int(f), true
}

// ExtractFirstHTMLValue unwraps a JSON object envelope: when s is a JSON
// object, the first non-empty string property (in document order) is
// returned. Any other input, including malformed JSON, comes back as is.
func ExtractFirstHTMLValue(s string) string {
	trimmed := strings.TrimSpace(s)
	if !strings.HasPrefix(trimmed, "{") || !strings.HasSuffix(trimmed, "}") {
		return s
	}
	if !gjson.Valid(trimmed) {
		return s
	}

	result := s
	gjson.Parse(trimmed).ForEach(func(_, value gjson.Result) bool {
		if value.Type == gjson.String && strings.TrimSpace(value.Str) != "" {
			result = value.Str
			return false
		}
		return true
	})
	return result
}
