package faq

import (
	"fmt"
	"strings"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/gaurav-prasanna/mixnorm/core/markup"
)

// Marker classes for rendered FAQ markup.
const (
	ClassFAQ          = "mix-generated-faq"
	ClassSection      = "mix-generated-faq-section"
	ClassSectionTitle = "mix-generated-faq-section-title"
	ClassItem         = "mix-generated-faq-item"
	ClassQuestion     = "mix-generated-faq-question"
	ClassAnswer       = "mix-generated-faq-answer"
)

// RenderHTML renders sections first, then every entry not already shown in
// a section. Answers are expected to be sanitized already.
func RenderHTML(content core.FaqContent) string {
	var b strings.Builder
	fmt.Fprintf(&b, `<div class="%s">`, ClassFAQ)

	for _, section := range content.Sections {
		fmt.Fprintf(&b, `<section class="%s"><h3 class="%s">%s</h3>`,
			ClassSection, ClassSectionTitle, markup.EscapeHTML(section.Title))
		for _, e := range section.Entries {
			writeEntry(&b, e)
		}
		b.WriteString("</section>")
	}

	for _, e := range standalone(content) {
		writeEntry(&b, e)
	}

	b.WriteString("</div>")
	return b.String()
}

func writeEntry(b *strings.Builder, e core.FaqEntry) {
	fmt.Fprintf(b, `<div class="%s"><h4 class="%s">%s</h4><div class="%s">%s</div></div>`,
		ClassItem, ClassQuestion, markup.EscapeHTML(e.Question), ClassAnswer, e.AnswerHTML)
}

// RenderPlain flattens the FAQ into blank-line separated text: each section
// title followed by its questions and answers, then the standalone entries.
func RenderPlain(content core.FaqContent) string {
	var parts []string
	add := func(s string) {
		if s = strings.TrimSpace(s); s != "" {
			parts = append(parts, s)
		}
	}

	for _, section := range content.Sections {
		add(section.Title)
		for _, e := range section.Entries {
			add(e.Question)
			add(e.AnswerPlain)
		}
	}
	for _, e := range standalone(content) {
		add(e.Question)
		add(e.AnswerPlain)
	}
	return strings.Join(parts, "\n\n")
}

// standalone returns entries absent from every section, de-duplicated by id.
func standalone(content core.FaqContent) []core.FaqEntry {
	seen := make(map[string]bool)
	for _, section := range content.Sections {
		for _, e := range section.Entries {
			seen[e.ID] = true
		}
	}

	var out []core.FaqEntry
	for _, e := range content.Entries {
		if seen[e.ID] {
			continue
		}
		seen[e.ID] = true
		out = append(out, e)
	}
	return out
}
