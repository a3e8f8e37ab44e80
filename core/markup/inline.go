package markup

import (
	"regexp"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

var (
	linkRegex       = regexp.MustCompile(`\[([^\[\]]+)\]\(([^()\s"]+)\)`)
	boldStarRegex   = regexp.MustCompile(`\*\*(\S(?:.*?\S)?)\*\*`)
	boldUnderRegex  = regexp.MustCompile(`__(\S(?:.*?\S)?)__`)
	inlineCodeRegex = regexp.MustCompile("`([^`]+)`")
	tagRegex        = regexp.MustCompile(`<[^<>]*>`)
	tagSlotRegex    = regexp.MustCompile(`\x00(\d+)\x00`)

	escaper = strings.NewReplacer("&", "&amp;", "<", "&lt;", ">", "&gt;")
)

// EscapeHTML escapes &, < and >.
func EscapeHTML(s string) string {
	return escaper.Replace(s)
}

// FormatInline escapes s and rewrites inline markdown spans into tags:
// links, then bold, then italic, then code. Escaping runs first so user
// supplied markup can never survive as a tag. Link tags are held out of the
// later passes so their URLs stay as written.
func FormatInline(s string) string {
	out := EscapeHTML(strings.ReplaceAll(s, "\x00", ""))
	out = linkRegex.ReplaceAllString(out, `<a href="$2">$1</a>`)
	out, tags := holdTags(out)
	out = boldStarRegex.ReplaceAllString(out, "<strong>$1</strong>")
	out = boldUnderRegex.ReplaceAllString(out, "<strong>$1</strong>")
	out = replaceEmphasis(out, '*')
	out = replaceEmphasis(out, '_')
	out = inlineCodeRegex.ReplaceAllString(out, "<code>$1</code>")
	return restoreTags(out, tags)
}

// holdTags swaps every tag in s for a NUL-delimited slot number.
func holdTags(s string) (string, []string) {
	var tags []string
	out := tagRegex.ReplaceAllStringFunc(s, func(tag string) string {
		tags = append(tags, tag)
		return "\x00" + strconv.Itoa(len(tags)-1) + "\x00"
	})
	return out, tags
}

func restoreTags(s string, tags []string) string {
	if len(tags) == 0 {
		return s
	}
	return tagSlotRegex.ReplaceAllStringFunc(s, func(slot string) string {
		n, err := strconv.Atoi(slot[1 : len(slot)-1])
		if err != nil || n >= len(tags) {
			return ""
		}
		return tags[n]
	})
}

// replaceEmphasis wraps delim-enclosed spans in <em>. A delimiter opens only
// when it is not glued to a word or another delimiter on its left and is
// followed by a non-space; closing mirrors that. Text inside tags is skipped.
func replaceEmphasis(s string, delim byte) string {
	if strings.IndexByte(s, delim) < 0 {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + 16)

	inTag := false
	for i := 0; i < len(s); {
		c := s[i]
		if c == '<' {
			inTag = true
		} else if c == '>' {
			inTag = false
		}

		if !inTag && c == delim && canOpen(s, i, delim) {
			if end := findClose(s, i+1, delim); end > 0 {
				b.WriteString("<em>")
				b.WriteString(s[i+1 : end])
				b.WriteString("</em>")
				i = end + 1
				continue
			}
		}
		b.WriteByte(c)
		i++
	}
	return b.String()
}

func canOpen(s string, i int, delim byte) bool {
	if i+1 >= len(s) {
		return false
	}
	next, _ := utf8.DecodeRuneInString(s[i+1:])
	if unicode.IsSpace(next) || next == rune(delim) {
		return false
	}
	if i > 0 {
		prev, _ := utf8.DecodeLastRuneInString(s[:i])
		if prev == rune(delim) || isWordRune(prev) {
			return false
		}
	}
	return true
}

func findClose(s string, start int, delim byte) int {
	inTag := false
	for j := start; j < len(s); j++ {
		switch s[j] {
		case '<':
			inTag = true
			continue
		case '>':
			inTag = false
			continue
		}
		if inTag || s[j] != delim || j == start {
			continue
		}
		prev, _ := utf8.DecodeLastRuneInString(s[:j])
		if unicode.IsSpace(prev) || prev == rune(delim) {
			continue
		}
		if j+1 < len(s) {
			next, _ := utf8.DecodeRuneInString(s[j+1:])
			if next == rune(delim) || isWordRune(next) {
				continue
			}
		}
		return j
	}
	return -1
}

func isWordRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsDigit(r)
}
