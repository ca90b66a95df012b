package contextmgr

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func TestSafeTruncate(t *testing.T) {
	t.Run("short content passes through", func(t *testing.T) {
		assert.Equal(t, "hello", safeTruncate("hello", 100))
	})

	t.Run("long content keeps head and tail", func(t *testing.T) {
		content := strings.Repeat("a", 500) + strings.Repeat("z", 500)
		out := safeTruncate(content, 200)

		assert.LessOrEqual(t, len(out), 200)
		assert.True(t, strings.HasPrefix(out, "aaa"))
		assert.True(t, strings.HasSuffix(out, "zzz"))
		assert.Contains(t, out, "middle truncated")
	})

	t.Run("idempotent", func(t *testing.T) {
		content := strings.Repeat("b", 10_000)
		once := safeTruncate(content, 400)
		assert.Equal(t, once, safeTruncate(once, 400))
	})

	t.Run("tiny limit still valid", func(t *testing.T) {
		out := safeTruncate(strings.Repeat("c", 100), 10)
		assert.LessOrEqual(t, len(out), 10)
	})
}

func TestTruncateUTF8(t *testing.T) {
	s := "héllo wörld"
	for n := 0; n <= len(s); n++ {
		out := truncateUTF8(s, n)
		assert.True(t, utf8.ValidString(out), "cut at %d produced invalid UTF-8", n)
		assert.LessOrEqual(t, len(out), n)
	}
	assert.Equal(t, s, truncateUTF8(s, 100))
}

func TestSafeTruncate_MultibyteBoundaries(t *testing.T) {
	content := strings.Repeat("é", 1000)
	out := safeTruncate(content, 300)
	assert.True(t, utf8.ValidString(out))
}

func TestTruncatedContentSentinel(t *testing.T) {
	t.Run("short content skipped", func(t *testing.T) {
		m := models.PreparedMessage{MessageID: "m1", Role: "user", Content: strings.Repeat("a", 400)}
		_, ok := truncatedContentSentinel(&m)
		assert.False(t, ok)
	})

	t.Run("medium content keeps 500 chars", func(t *testing.T) {
		m := models.PreparedMessage{MessageID: "m1", Role: "user", Content: strings.Repeat("a", 2000)}
		out, ok := truncatedContentSentinel(&m)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(out, strings.Repeat("a", 500)))
		assert.Equal(t, byte('\n'), out[500], "hint starts right after the 500-char prefix")
		assert.Contains(t, out, `message_id "m1"`)
	})

	t.Run("long content keeps 1500 chars", func(t *testing.T) {
		m := models.PreparedMessage{MessageID: "m1", Role: "user", Content: strings.Repeat("a", 10_000)}
		out, ok := truncatedContentSentinel(&m)
		require.True(t, ok)
		assert.True(t, strings.HasPrefix(out, strings.Repeat("a", 1500)))
		assert.Contains(t, out, "expand-message")
	})

	t.Run("structured content skipped", func(t *testing.T) {
		m := models.PreparedMessage{MessageID: "m1", Role: "user", Content: map[string]any{"k": "v"}}
		_, ok := truncatedContentSentinel(&m)
		assert.False(t, ok)
	})
}

func TestTruncateToPrefix_Idempotent(t *testing.T) {
	content := strings.Repeat("x", 5000)
	once := truncateToPrefix(content, 1500, "m1")
	assert.Equal(t, once, truncateToPrefix(once, 1500, "m1"))
	assert.True(t, strings.HasPrefix(once, content[:1500]))
}

func TestToolResultSentinel(t *testing.T) {
	s := toolResultSentinel("abc-123")
	assert.Contains(t, s, `message_id "abc-123"`)
	assert.Contains(t, s, "expand-message")
}
