// Package sanitize implements core.Sanitizer on top of bluemonday.
// One policy is built per core.Policy value when the sanitizer is created
// and never mutated afterwards, which keeps Sanitize safe for concurrent use.
package sanitize

import (
	"regexp"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/microcosm-cc/bluemonday"
)

// textElements are the block and inline elements generated content may use.
var textElements = []string{
	"p", "br", "hr", "div", "span", "section", "article", "blockquote", "pre",
	"h1", "h2", "h3", "h4", "h5", "h6",
	"strong", "b", "em", "i", "u", "s", "del", "ins", "mark", "small", "sub", "sup",
	"code", "kbd", "abbr", "cite", "q",
	"dl", "dt", "dd",
}

var classValueRegex = regexp.MustCompile(`^[a-zA-Z0-9_\- ]*$`)

// BluemondaySanitizer sanitizes HTML fragments with a fixed policy set.
type BluemondaySanitizer struct {
	policies map[core.Policy]*bluemonday.Policy
}

// New creates a BluemondaySanitizer with every policy combination prebuilt.
func New() *BluemondaySanitizer {
	s := &BluemondaySanitizer{policies: make(map[core.Policy]*bluemonday.Policy, 8)}
	for _, images := range []bool{false, true} {
		for _, links := range []bool{false, true} {
			for _, tables := range []bool{false, true} {
				p := core.Policy{AllowImages: images, AllowLinks: links, AllowTables: tables}
				s.policies[p] = buildPolicy(p)
			}
		}
	}
	return s
}

// Sanitize strips everything the policy does not allow.
func (s *BluemondaySanitizer) Sanitize(html string, policy core.Policy) string {
	if html == "" {
		return ""
	}
	return s.policies[policy].Sanitize(html)
}

func buildPolicy(opts core.Policy) *bluemonday.Policy {
	p := bluemonday.NewPolicy()
	p.AllowElements(textElements...)
	p.AllowLists()
	p.AllowAttrs("class").Matching(classValueRegex).Globally()
	p.AllowAttrs("title").Globally()

	if opts.AllowLinks {
		p.RequireParseableURLs(true)
		p.AllowRelativeURLs(true)
		p.AllowURLSchemes("http", "https", "mailto")
		p.AllowAttrs("href").OnElements("a")
		p.AllowElements("a")
	}
	if opts.AllowTables {
		p.AllowTables()
		p.AllowAttrs("colspan", "rowspan").Matching(bluemonday.Integer).OnElements("th", "td")
	}
	if opts.AllowImages {
		p.AllowImages()
	}
	return p
}

// Passthrough returns its input unchanged. It stands in for a real
// sanitizer where converter output is under test.
type Passthrough struct{}

// Sanitize returns html unchanged.
func (Passthrough) Sanitize(html string, _ core.Policy) string {
	return html
}
