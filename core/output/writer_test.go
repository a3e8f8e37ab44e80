package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriterWrite(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "out")
	w, err := New(dir)
	require.NoError(t, err)

	path, err := w.Write("landing page/hero", []byte("data"), ".json")
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "landing_page_hero.json"), path)

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "data", string(got))
}

func TestWriterEmptyName(t *testing.T) {
	w, err := New(t.TempDir())
	require.NoError(t, err)

	path, err := w.Write("", []byte("x"), ".md")
	require.NoError(t, err)
	assert.Equal(t, "output.md", filepath.Base(path))
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "a_b-c_d", sanitize("a b-c.d"))
	assert.Equal(t, "caf_", sanitize("café"))
}
