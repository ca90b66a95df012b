package contextmgr

import (
	"fmt"
	"unicode/utf8"

	"github.com/weftlabs/weft/pkg/models"
)

const middleMarker = "\n\n... (middle truncated for token management) ...\n\n"

func toolResultSentinel(messageID string) string {
	return fmt.Sprintf("Tool output removed for token management.\nUse the expand-message tool with message_id %q to see the full output.", messageID)
}

func expandHint(messageID string) string {
	return fmt.Sprintf("\n\n... (truncated for token management)\nUse the expand-message tool with message_id %q to see the full message.", messageID)
}

// truncatedContentSentinel builds the tier 2/3 replacement for an
// oversized string message: a content prefix plus the expand hint.
// Non-string or already short content is left alone.
func truncatedContentSentinel(m *models.PreparedMessage) (string, bool) {
	content, ok := m.Content.(string)
	if !ok {
		return "", false
	}
	limit := 1500
	if len(content) <= 3*1500 {
		limit = 500
	}
	if len(content) <= limit {
		return "", false
	}
	return truncateUTF8(content, limit) + expandHint(m.MessageID), true
}

// truncateToPrefix keeps the first maxChars of content with the expand
// hint appended. Idempotent: re-truncating the output reproduces it.
func truncateToPrefix(content string, maxChars int, messageID string) string {
	if len(content) <= maxChars {
		return content
	}
	return truncateUTF8(content, maxChars) + expandHint(messageID)
}

// safeTruncate removes the middle of content so the total stays within
// maxChars, keeping the head and tail. Output never exceeds maxChars, so
// a second pass is a no-op.
func safeTruncate(content string, maxChars int) string {
	if len(content) <= maxChars {
		return content
	}
	keep := (maxChars - len(middleMarker)) / 2
	if keep <= 0 {
		return truncateUTF8(content, maxChars)
	}
	head := truncateUTF8(content, keep)
	tail := content[len(content)-keep:]
	// advance past a split rune at the tail boundary
	for len(tail) > 0 && !utf8.RuneStart(tail[0]) {
		tail = tail[1:]
	}
	return head + middleMarker + tail
}

// truncateUTF8 cuts at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}

// stripToolExecutionArguments removes tool_execution.arguments from
// parsed content objects. The arguments were already consumed by the
// tool run; resending them wastes budget.
func stripToolExecutionArguments(messages []models.PreparedMessage) []models.PreparedMessage {
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)
	for i := range out {
		obj, ok := out[i].Content.(map[string]any)
		if !ok {
			continue
		}
		exec, ok := obj["tool_execution"].(map[string]any)
		if !ok {
			continue
		}
		if _, has := exec["arguments"]; !has {
			continue
		}
		strippedExec := make(map[string]any, len(exec)-1)
		for k, v := range exec {
			if k != "arguments" {
				strippedExec[k] = v
			}
		}
		stripped := make(map[string]any, len(obj))
		for k, v := range obj {
			stripped[k] = v
		}
		stripped["tool_execution"] = strippedExec
		out[i].Content = stripped
	}
	return out
}
