package markup

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsLikelyMarkdown(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{"empty", "", false},
		{"whitespace", "  \n\t", false},
		{"heading", "# Title", true},
		{"heading level six", "###### Deep", true},
		{"bullet on later line", "intro\n- item", true},
		{"plus bullet", "+ item", true},
		{"ordered", "1. first", true},
		{"crlf ordered", "intro\r\n2. second", true},
		{"hashtag", "#hashtag only", false},
		{"plain prose", "Just a sentence.", false},
		{"html wins", "<p>text</p>\n# Title", false},
		{"html with attributes", "<div class=\"x\">- a</div>", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsLikelyMarkdown(tt.in))
		})
	}
}

func TestContainsHTMLTag(t *testing.T) {
	assert.True(t, ContainsHTMLTag("<p>hi</p>"))
	assert.True(t, ContainsHTMLTag("line<br/>break"))
	assert.True(t, ContainsHTMLTag(`<a href="/x">x</a>`))
	assert.False(t, ContainsHTMLTag("a < b > c"))
	assert.False(t, ContainsHTMLTag("1 <2"))
}

func TestFormatInline(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"escape", "a < b & c > d", "a &lt; b &amp; c &gt; d"},
		{"script is escaped", "<script>alert(1)</script>", "&lt;script&gt;alert(1)&lt;/script&gt;"},
		{"bold stars", "**bold** text", "<strong>bold</strong> text"},
		{"bold underscores", "__bold__ text", "<strong>bold</strong> text"},
		{"italic stars", "an *idea* here", "an <em>idea</em> here"},
		{"italic underscores", "an _idea_ here", "an <em>idea</em> here"},
		{"adjacent italics", "*one* *two*", "<em>one</em> <em>two</em>"},
		{"bold then italic", "**b** and _i_", "<strong>b</strong> and <em>i</em>"},
		{"snake case untouched", "snake_case_name", "snake_case_name"},
		{"lone star untouched", "2 * 3 * 4", "2 * 3 * 4"},
		{"code", "use `go test` now", "use <code>go test</code> now"},
		{"link", "see [docs](https://example.com/a_b_c)", `see <a href="https://example.com/a_b_c">docs</a>`},
		{"link with bold label", "[**Go**](https://go.dev)", `<a href="https://go.dev"><strong>Go</strong></a>`},
		{"quote in url is not a link", `[x](a"b)`, `[x](a"b)`},
		{"bold markers in url kept", "[x](http://a.com/**b**)", `<a href="http://a.com/**b**">x</a>`},
		{"underscores in url kept", "[x](http://a.com/a__b__c)", `<a href="http://a.com/a__b__c">x</a>`},
		{"code markers in url kept", "[x](http://a.com/`b`)", "<a href=\"http://a.com/`b`\">x</a>"},
		{"bold around link", "**see [docs](https://x.io)**", `<strong>see <a href="https://x.io">docs</a></strong>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatInline(tt.in))
		})
	}
}

func TestMarkdownToHTML(t *testing.T) {
	in := "# Title\n\nSome **bold** and _italic_ text.\n\n- one\n- two"
	want := `<h1 class="mix-generated-heading-large">Title</h1>` +
		`<p class="mix-generated-paragraph">Some <strong>bold</strong> and <em>italic</em> text.</p>` +
		`<ul class="mix-generated-list"><li class="mix-generated-list-item">one</li>` +
		`<li class="mix-generated-list-item">two</li></ul>`
	assert.Equal(t, want, MarkdownToHTML(in))
}

func TestMarkdownToHTMLBlocks(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"multi-line paragraph",
			"line one\nline two",
			`<p class="mix-generated-paragraph">line one<br />line two</p>`,
		},
		{
			"small heading",
			"### Details",
			`<h3 class="mix-generated-heading-small">Details</h3>`,
		},
		{
			"heading level clamped",
			"######## Deep",
			`<h6 class="mix-generated-heading-small">Deep</h6>`,
		},
		{
			"ordered then unordered",
			"1. a\n2. b\n- c",
			`<ol class="mix-generated-list"><li class="mix-generated-list-item">a</li>` +
				`<li class="mix-generated-list-item">b</li></ol>` +
				`<ul class="mix-generated-list"><li class="mix-generated-list-item">c</li></ul>`,
		},
		{
			"paragraph closes list",
			"- a\ntail",
			`<ul class="mix-generated-list"><li class="mix-generated-list-item">a</li></ul>` +
				`<p class="mix-generated-paragraph">tail</p>`,
		},
		{
			"paragraph between bullets splits the list",
			"- one\nsome text\n- two",
			`<ul class="mix-generated-list"><li class="mix-generated-list-item">one</li></ul>` +
				`<p class="mix-generated-paragraph">some text</p>` +
				`<ul class="mix-generated-list"><li class="mix-generated-list-item">two</li></ul>`,
		},
		{
			"crlf and trailing spaces",
			"## Head  \r\n\r\ntext   ",
			`<h2 class="mix-generated-heading-large">Head</h2><p class="mix-generated-paragraph">text</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, MarkdownToHTML(tt.in))
		})
	}
}

func TestIsHeadingLine(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"Key Benefits", true},
		{"Why Choose Us?", true},
		{"Return of the Jedi", true},
		{"Step One: Prepare The Surface", true},
		{"Note: see the label below.", false},
		{"Note: see below", false},
		{"Size: Large", false},
		{"One Two Three Four Five Six Seven: Big Finish", false},
		{"Hello World!", false},
		{"what is this", false},
		{"AB", false},
		{"- Item One", false},
		{"2. Second Step", false},
		{"", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, IsHeadingLine(tt.in))
		})
	}
}

func TestPlainTextToHTML(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"heading and paragraph",
			"Key Benefits\n\nThis product helps.",
			`<h2 class="mix-generated-heading-large">Key Benefits</h2>` +
				`<p class="mix-generated-paragraph">This product helps.</p>`,
		},
		{
			"colon sentence stays a paragraph",
			"Note: see the label below.",
			`<p class="mix-generated-paragraph">Note: see the label below.</p>`,
		},
		{
			"bullets",
			"- one\n* two",
			`<ul class="mix-generated-list"><li class="mix-generated-list-item">one</li>` +
				`<li class="mix-generated-list-item">two</li></ul>`,
		},
		{
			"descriptor list",
			"Color: Red\nSize: Large",
			`<ul class="mix-generated-list"><li class="mix-generated-list-item"><strong>Color:</strong> Red</li>` +
				`<li class="mix-generated-list-item"><strong>Size:</strong> Large</li></ul>`,
		},
		{
			"single bullet line",
			"- Item One",
			`<ul class="mix-generated-list"><li class="mix-generated-list-item">Item One</li></ul>`,
		},
		{
			"lines joined in paragraph",
			"first line\n  second line  \n\n\n",
			`<p class="mix-generated-paragraph">first line<br />second line</p>`,
		},
		{
			"escapes markup",
			"a <b>tag</b> here",
			`<p class="mix-generated-paragraph">a &lt;b&gt;tag&lt;/b&gt; here</p>`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, PlainTextToHTML(tt.in))
		})
	}
}

func TestBlockPredicates(t *testing.T) {
	assert.True(t, IsBulletBlock([]string{"- a", "+ b"}))
	assert.False(t, IsBulletBlock([]string{"- a", "b"}))
	assert.False(t, IsBulletBlock(nil))

	assert.True(t, IsDescriptorBlock([]string{"Color: Red", "Size: L"}))
	assert.False(t, IsDescriptorBlock([]string{"Color: Red"}))
	assert.False(t, IsDescriptorBlock([]string{"Color: Red", "no colon"}))
}
