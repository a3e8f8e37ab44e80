package markup

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	headingLineRegex = regexp.MustCompile(`^(#+)\s+(.+)$`)
	orderedLineRegex = regexp.MustCompile(`^\d+\.\s+(.+)$`)
	bulletLineRegex  = regexp.MustCompile(`^[-*+]\s+(.+)$`)
)

type listKind int

const (
	listNone listKind = iota
	listUnordered
	listOrdered
)

// markdownWriter is the line state machine behind MarkdownToHTML.
type markdownWriter struct {
	out       strings.Builder
	list      listKind
	paragraph []string
}

// MarkdownToHTML converts the supported markdown subset (ATX headings,
// ordered and unordered lists, paragraphs, inline spans) into block HTML.
// Consecutive plain lines form one paragraph joined by <br />.
func MarkdownToHTML(md string) string {
	w := &markdownWriter{}

	for _, raw := range strings.Split(normalizeNewlines(md), "\n") {
		line := strings.TrimSpace(raw)

		if line == "" {
			w.flushParagraph()
			w.closeList()
			continue
		}

		if m := headingLineRegex.FindStringSubmatch(line); m != nil {
			w.flushParagraph()
			w.closeList()
			w.heading(len(m[1]), m[2])
			continue
		}

		if m := orderedLineRegex.FindStringSubmatch(line); m != nil {
			w.flushParagraph()
			w.item(listOrdered, m[1])
			continue
		}

		if m := bulletLineRegex.FindStringSubmatch(line); m != nil {
			w.flushParagraph()
			w.item(listUnordered, m[1])
			continue
		}

		// A paragraph never nests inside a list.
		w.closeList()
		w.paragraph = append(w.paragraph, line)
	}

	w.flushParagraph()
	w.closeList()
	return w.out.String()
}

func (w *markdownWriter) heading(level int, text string) {
	if level > 6 {
		level = 6
	}
	fmt.Fprintf(&w.out, `<h%d class="%s">%s</h%d>`, level, headingClass(level), FormatInline(strings.TrimSpace(text)), level)
}

func (w *markdownWriter) item(kind listKind, text string) {
	if w.list != kind {
		w.closeList()
		tag := "ul"
		if kind == listOrdered {
			tag = "ol"
		}
		fmt.Fprintf(&w.out, `<%s class="%s">`, tag, ClassList)
		w.list = kind
	}
	fmt.Fprintf(&w.out, `<li class="%s">%s</li>`, ClassListItem, FormatInline(text))
}

func (w *markdownWriter) closeList() {
	switch w.list {
	case listUnordered:
		w.out.WriteString("</ul>")
	case listOrdered:
		w.out.WriteString("</ol>")
	}
	w.list = listNone
}

func (w *markdownWriter) flushParagraph() {
	if len(w.paragraph) == 0 {
		return
	}
	formatted := make([]string, len(w.paragraph))
	for i, line := range w.paragraph {
		formatted[i] = FormatInline(line)
	}
	fmt.Fprintf(&w.out, `<p class="%s">%s</p>`, ClassParagraph, strings.Join(formatted, "<br />"))
	w.paragraph = w.paragraph[:0]
}

func headingClass(level int) string {
	if level <= 2 {
		return ClassHeadingLarge
	}
	return ClassHeadingSmall
}
