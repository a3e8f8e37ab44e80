package markup

import (
	"regexp"
	"strings"
)

var (
	htmlTagRegex = regexp.MustCompile(`(?i)<[a-z][a-z0-9-]*(\s[^<>]*)?/?>`)

	// markdownLineRegex matches a heading, bullet or ordered-list marker at a line start.
	markdownLineRegex = regexp.MustCompile(`(?m)^[ \t]*(#{1,6} |[-*+] |\d+\. )`)
)

// ContainsHTMLTag reports whether s holds something shaped like an HTML start tag.
func ContainsHTMLTag(s string) bool {
	return htmlTagRegex.MatchString(s)
}

// IsLikelyMarkdown decides whether s should go through MarkdownToHTML.
// HTML tags win over markdown markers.
func IsLikelyMarkdown(s string) bool {
	if strings.TrimSpace(s) == "" {
		return false
	}
	if ContainsHTMLTag(s) {
		return false
	}
	return markdownLineRegex.MatchString(normalizeNewlines(s))
}

func normalizeNewlines(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
