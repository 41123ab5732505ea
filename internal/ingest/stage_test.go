package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStageUploadCopiesUnderUniqueName(t *testing.T) {
	srcDir, uploadDir := t.TempDir(), t.TempDir()
	src := filepath.Join(srcDir, "invoice.pdf")
	require.NoError(t, os.WriteFile(src, []byte("%PDF-1.4 content"), 0o644))

	first, err := StageUpload(uploadDir, src)
	require.NoError(t, err)
	second, err := StageUpload(uploadDir, src)
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
	assert.True(t, strings.HasSuffix(first, "_invoice.pdf"))

	b, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 content", string(b))

	// Original stays where it was.
	_, err = os.Stat(src)
	require.NoError(t, err)
}

func TestStageUploadMissingSource(t *testing.T) {
	_, err := StageUpload(t.TempDir(), filepath.Join(t.TempDir(), "nope.pdf"))
	require.Error(t, err)
}
