package llm

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildTextUserPromptShortTextPassesThrough(t *testing.T) {
	p := BuildTextUserPrompt("hello invoice")
	assert.Contains(t, p, "hello invoice")
}

func TestBuildTextUserPromptTruncatesOnRuneBoundary(t *testing.T) {
	// Multi-byte runes positioned so the byte cap lands mid-sequence.
	text := "a" + strings.Repeat("é", 4000) // odd leading byte misaligns the cap
	p := BuildTextUserPrompt(text)

	assert.True(t, utf8.ValidString(p))
	assert.Less(t, len(p), len(text))
	assert.True(t, strings.HasSuffix(p, "é"))
}

func TestBuildSystemPromptEmbedsSchema(t *testing.T) {
	p := BuildSystemPrompt()
	require.Contains(t, p, "company_name")
	require.Contains(t, p, "confidence")
}
