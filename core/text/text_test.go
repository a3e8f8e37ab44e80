package text

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"blocks separate words", "<h1>Title</h1><p>Some text.</p>", "Title Some text."},
		{"inline keeps words", "<p>bo<strong>ld</strong> word</p>", "bold word"},
		{"list items", "<ul><li>one</li><li>two</li></ul>", "one two"},
		{"br", "line one<br/>line two", "line one line two"},
		{"entities decoded", "<p>Tom &amp; Jerry&#39;s</p>", "Tom & Jerry's"},
		{"script dropped", "<p>a</p><script>b()</script>", "a"},
		{"plain input", "  just\n\ttext  ", "just text"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract(tt.in))
		})
	}
}

func TestCollapse(t *testing.T) {
	assert.Equal(t, "a b c", Collapse("  a \n\n b\t\tc "))
	assert.Equal(t, "", Collapse(" \n "))
}

func TestCount(t *testing.T) {
	words, chars := Count("Title Some bold text")
	assert.Equal(t, 4, words)
	assert.Equal(t, 20, chars)

	words, chars = Count("")
	assert.Zero(t, words)
	assert.Zero(t, chars)

	words, chars = Count("café au lait")
	assert.Equal(t, 3, words)
	assert.Equal(t, 12, chars)
}
