package tokens

import "github.com/weftlabs/weft/pkg/models"

// charsPerToken is the rough English-text ratio used when no exact
// counter is available.
const charsPerToken = 4

// perMessageOverhead approximates the framing tokens each message adds.
const perMessageOverhead = 4

// EstimateText estimates tokens for a bare string.
func EstimateText(text string) int {
	return len(text) / charsPerToken
}

// EstimateMessage estimates tokens for one prepared message, counting
// content, role framing, and tool call payloads.
func EstimateMessage(m *models.PreparedMessage) int {
	chars := len(m.Role) + len(m.Name) + len(m.ToolCallID) + len(m.ContentString())
	for _, tc := range m.ToolCalls {
		chars += len(tc.ID) + len(tc.Name) + len(tc.Arguments)
	}
	return chars/charsPerToken + perMessageOverhead
}

// EstimateMessages estimates tokens for a whole conversation plus an
// optional system prompt.
func EstimateMessages(messages []models.PreparedMessage, system string) int {
	total := 0
	if system != "" {
		total += EstimateText(system) + perMessageOverhead
	}
	for i := range messages {
		total += EstimateMessage(&messages[i])
	}
	return total
}
