package sanitize

import (
	"testing"

	"github.com/gaurav-prasanna/mixnorm/core"
	"github.com/stretchr/testify/assert"
)

func TestSanitizeStripsDangerousMarkup(t *testing.T) {
	s := New()

	tests := []struct {
		name string
		in   string
	}{
		{"script", `<p>hi</p><script>alert(1)</script>`},
		{"iframe", `<iframe src="https://evil.example"></iframe><p>hi</p>`},
		{"event handler", `<p onclick="steal()">hi</p>`},
		{"image handler", `<img src="x" onerror="steal()"><p>hi</p>`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := s.Sanitize(tt.in, core.ContentPolicy())
			assert.NotContains(t, out, "<script")
			assert.NotContains(t, out, "<iframe")
			assert.NotContains(t, out, "onclick")
			assert.NotContains(t, out, "onerror")
			assert.Contains(t, out, "hi")
		})
	}
}

func TestSanitizeKeepsMarkerClasses(t *testing.T) {
	in := `<h2 class="mix-generated-heading-large">Title</h2><ul class="mix-generated-list"><li class="mix-generated-list-item">a</li></ul>`
	assert.Equal(t, in, New().Sanitize(in, core.ContentPolicy()))
}

func TestSanitizePolicyOptions(t *testing.T) {
	s := New()

	link := `<a href="https://example.com">x</a>`
	assert.Equal(t, link, s.Sanitize(link, core.ContentPolicy()))
	assert.NotContains(t, s.Sanitize(link, core.Policy{}), "href")
	assert.NotContains(t, s.Sanitize(`<a href="javascript:alert(1)">x</a>`, core.ContentPolicy()), "javascript")

	table := `<table><tr><td>cell</td></tr></table>`
	assert.Contains(t, s.Sanitize(table, core.ContentPolicy()), "<td>cell</td>")
	assert.NotContains(t, s.Sanitize(table, core.Policy{}), "<td>")

	img := `<img src="https://example.com/a.png">`
	assert.NotContains(t, s.Sanitize(img, core.ContentPolicy()), "<img")
	assert.Contains(t, s.Sanitize(img, core.Policy{AllowImages: true}), "<img")
}

func TestSanitizeEmpty(t *testing.T) {
	assert.Equal(t, "", New().Sanitize("", core.ContentPolicy()))
}

func TestPassthrough(t *testing.T) {
	in := `<script>x</script>`
	assert.Equal(t, in, Passthrough{}.Sanitize(in, core.ContentPolicy()))
}

func TestContentPolicyIsFresh(t *testing.T) {
	p := core.ContentPolicy()
	p.AllowImages = true
	assert.False(t, core.ContentPolicy().AllowImages)
	assert.True(t, core.ContentPolicy().AllowLinks)
	assert.True(t, core.ContentPolicy().AllowTables)
}
