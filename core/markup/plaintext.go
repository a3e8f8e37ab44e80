package markup

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"
	"unicode/utf8"
)

const maxHeadingLen = 120

var (
	blockSplitRegex     = regexp.MustCompile(`\n[ \t]*\n\s*`)
	descriptorLineRegex = regexp.MustCompile(`^([^:]{1,80}):\s+(\S.*)$`)

	// minorWords may stay lowercase inside a title.
	minorWords = map[string]bool{
		"a": true, "an": true, "and": true, "as": true, "at": true, "but": true,
		"by": true, "for": true, "from": true, "in": true, "into": true, "nor": true,
		"of": true, "on": true, "or": true, "per": true, "the": true, "to": true,
		"vs": true, "vs.": true, "via": true, "with": true,
	}
)

// PlainTextToHTML promotes plain text into block HTML. Text is split into
// blocks on blank lines; each block becomes a heading, a bullet list, a
// descriptor list or a paragraph, first match wins.
func PlainTextToHTML(s string) string {
	var out strings.Builder
	for _, block := range blockSplitRegex.Split(strings.TrimSpace(normalizeNewlines(s)), -1) {
		lines := blockLines(block)
		if len(lines) == 0 {
			continue
		}

		switch {
		case len(lines) == 1 && IsHeadingLine(lines[0]):
			fmt.Fprintf(&out, `<h2 class="%s">%s</h2>`, ClassHeadingLarge, FormatInline(lines[0]))
		case IsBulletBlock(lines):
			fmt.Fprintf(&out, `<ul class="%s">`, ClassList)
			for _, line := range lines {
				m := bulletLineRegex.FindStringSubmatch(line)
				fmt.Fprintf(&out, `<li class="%s">%s</li>`, ClassListItem, FormatInline(m[1]))
			}
			out.WriteString("</ul>")
		case IsDescriptorBlock(lines):
			fmt.Fprintf(&out, `<ul class="%s">`, ClassList)
			for _, line := range lines {
				m := descriptorLineRegex.FindStringSubmatch(line)
				fmt.Fprintf(&out, `<li class="%s"><strong>%s:</strong> %s</li>`,
					ClassListItem, FormatInline(strings.TrimSpace(m[1])), FormatInline(m[2]))
			}
			out.WriteString("</ul>")
		default:
			formatted := make([]string, len(lines))
			for i, line := range lines {
				formatted[i] = FormatInline(line)
			}
			fmt.Fprintf(&out, `<p class="%s">%s</p>`, ClassParagraph, strings.Join(formatted, "<br />"))
		}
	}
	return out.String()
}

func blockLines(block string) []string {
	var lines []string
	for _, line := range strings.Split(block, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			lines = append(lines, line)
		}
	}
	return lines
}

// IsHeadingLine reports whether a single line reads as a title: short,
// mostly letters, no sentence ending, no list marker, Title Cased. A colon is accepted only
// with at most six words before it and at least two after.
func IsHeadingLine(line string) bool {
	line = strings.TrimSpace(line)
	if line == "" || utf8.RuneCountInString(line) > maxHeadingLen {
		return false
	}
	if countLetters(line) < 3 {
		return false
	}
	if strings.HasSuffix(line, ".") || strings.HasSuffix(line, "!") {
		return false
	}
	if bulletLineRegex.MatchString(line) || orderedLineRegex.MatchString(line) {
		return false
	}

	if before, after, found := strings.Cut(line, ":"); found {
		if len(strings.Fields(after)) < 2 || len(strings.Fields(before)) > 6 {
			return false
		}
	}

	stripped := strings.NewReplacer(":", " ", "?", " ").Replace(line)
	return isTitleCase(strings.Fields(stripped))
}

func isTitleCase(words []string) bool {
	if len(words) == 0 {
		return false
	}
	for i, word := range words {
		if i > 0 && minorWords[strings.ToLower(word)] {
			continue
		}
		r := firstAlnum(word)
		if r == 0 {
			continue
		}
		if !unicode.IsUpper(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// firstAlnum returns the first letter or digit of word, skipping leading
// punctuation such as quotes or parentheses.
func firstAlnum(word string) rune {
	for _, r := range word {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
	}
	return 0
}

func countLetters(s string) int {
	n := 0
	for _, r := range s {
		if unicode.IsLetter(r) {
			n++
		}
	}
	return n
}

// IsBulletBlock reports whether every line carries a -, * or + bullet marker.
func IsBulletBlock(lines []string) bool {
	if len(lines) == 0 {
		return false
	}
	for _, line := range lines {
		if !bulletLineRegex.MatchString(line) {
			return false
		}
	}
	return true
}

// IsDescriptorBlock reports whether a block of two or more lines is made
// of "label: value" pairs.
func IsDescriptorBlock(lines []string) bool {
	if len(lines) < 2 {
		return false
	}
	for _, line := range lines {
		if !descriptorLineRegex.MatchString(line) {
			return false
		}
	}
	return true
}
