package pdf

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractTextMissingFileReturnsEmpty(t *testing.T) {
	s := NewService(t.TempDir(), nil)
	assert.Empty(t, s.ExtractText(filepath.Join(t.TempDir(), "nope.pdf")))
}

func TestRenderPageMissingFileFails(t *testing.T) {
	s := NewService(t.TempDir(), nil)
	_, err := s.RenderPage(filepath.Join(t.TempDir(), "nope.pdf"), 0)
	require.Error(t, err)
}

func TestSplitRejectsMismatchedArguments(t *testing.T) {
	s := NewService(t.TempDir(), nil)
	_, err := s.Split("in.pdf", [][]int{{0}, {1}}, []string{"only-one"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "page ranges")
}

func TestSplitMissingSourceFails(t *testing.T) {
	dir := t.TempDir()
	s := NewService(dir, nil)
	out, err := s.Split(filepath.Join(dir, "nope.pdf"), [][]int{{0}}, []string{"result"})
	require.Error(t, err)
	assert.Empty(t, out)
}
