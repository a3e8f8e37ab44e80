package extract

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFragmentStripsDocumentWrappers(t *testing.T) {
	in := `<!DOCTYPE html><html><head><title>T</title><style>p{}</style></head>` +
		`<body><p>Hello</p><script>x()</script></body></html>`
	assert.Equal(t, "<p>Hello</p>", Fragment(in))
}

func TestFragmentLeavesFragmentsAlone(t *testing.T) {
	in := `<p>Hello <em>there</em></p>`
	assert.Equal(t, in, Fragment(in))
}

func TestIsDocument(t *testing.T) {
	assert.True(t, IsDocument("<HTML><body>x</body></HTML>"))
	assert.True(t, IsDocument("<body class=\"a\">x</body>"))
	assert.False(t, IsDocument("<p>x</p>"))
	assert.False(t, IsDocument("<header>x</header>"))
}
