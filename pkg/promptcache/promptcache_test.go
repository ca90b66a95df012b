package promptcache

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/pkg/models"
)

func userMsg(content string) models.PreparedMessage {
	return models.PreparedMessage{Role: "user", Content: content}
}

func assistantMsg(content string) models.PreparedMessage {
	return models.PreparedMessage{Role: "assistant", Content: content}
}

func cachedIndexes(messages []models.PreparedMessage) []int {
	var idx []int
	for i, m := range messages {
		if m.CacheControl {
			idx = append(idx, i)
		}
	}
	return idx
}

func TestApply_AnthropicMarksSystemAndTrailingUserTurns(t *testing.T) {
	messages := []models.PreparedMessage{
		userMsg("one"),
		assistantMsg("a1"),
		userMsg("two"),
		assistantMsg("a2"),
		userMsg("three"),
		assistantMsg("a3"),
		userMsg("four"),
	}

	req := Apply(messages, "system prompt", "anthropic/claude-sonnet-4-20250514")

	assert.True(t, req.SystemCacheControl)
	// System takes one breakpoint; the last three user turns get the rest.
	assert.Equal(t, []int{2, 4, 6}, cachedIndexes(req.Messages))
}

func TestApply_NoSystemFreesBreakpoint(t *testing.T) {
	messages := []models.PreparedMessage{
		userMsg("one"),
		userMsg("two"),
		userMsg("three"),
		userMsg("four"),
		userMsg("five"),
	}

	req := Apply(messages, "", "claude-sonnet-4-20250514")

	assert.False(t, req.SystemCacheControl)
	assert.Equal(t, []int{1, 2, 3, 4}, cachedIndexes(req.Messages))
}

func TestApply_NonAnthropicPassesThrough(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "one", CacheControl: true},
		assistantMsg("a1"),
	}

	req := Apply(messages, "system", "gpt-4o")

	assert.False(t, req.SystemCacheControl)
	assert.Empty(t, cachedIndexes(req.Messages), "stale markers are cleared")
}

func TestApply_Deterministic(t *testing.T) {
	messages := []models.PreparedMessage{
		userMsg("one"),
		assistantMsg("a1"),
		userMsg("two"),
	}

	first := Apply(messages, "sys", "claude-sonnet-4-20250514")
	second := Apply(messages, "sys", "claude-sonnet-4-20250514")
	assert.Equal(t, first, second)
}

func TestApply_DoesNotMutateInput(t *testing.T) {
	messages := []models.PreparedMessage{userMsg("one"), userMsg("two")}

	Apply(messages, "sys", "claude-sonnet-4-20250514")

	for _, m := range messages {
		assert.False(t, m.CacheControl)
	}
}

func TestApply_FewUserTurns(t *testing.T) {
	messages := []models.PreparedMessage{
		userMsg("only"),
		assistantMsg("a1"),
	}

	req := Apply(messages, "sys", "claude-sonnet-4-20250514")
	assert.Equal(t, []int{0}, cachedIndexes(req.Messages))
}

func TestValidateCacheBlocks_StripsExcessKeepingEarliest(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "a", CacheControl: true},
		{Role: "user", Content: "b", CacheControl: true},
		{Role: "user", Content: "c", CacheControl: true},
		{Role: "user", Content: "d", CacheControl: true},
		{Role: "user", Content: "e", CacheControl: true},
	}

	out := ValidateCacheBlocks(messages, true, MaxBreakpoints)
	require.Len(t, out, 5)
	assert.Equal(t, []int{0, 1, 2}, cachedIndexes(out))
}

func TestValidateCacheBlocks_UnderLimitUnchanged(t *testing.T) {
	messages := []models.PreparedMessage{
		{Role: "user", Content: "a", CacheControl: true},
		{Role: "user", Content: "b"},
	}

	out := ValidateCacheBlocks(messages, false, MaxBreakpoints)
	assert.Equal(t, []int{0}, cachedIndexes(out))
}
