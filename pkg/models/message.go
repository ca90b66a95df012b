package models

import (
	"encoding/json"
	"fmt"

	"github.com/weftlabs/weft/ent"
)

// Message types stored in the type column. The set is open: callers may
// record custom types, but only these participate in runner logic.
const (
	MessageTypeUser           = "user"
	MessageTypeAssistant      = "assistant"
	MessageTypeTool           = "tool"
	MessageTypeStatus         = "status"
	MessageTypeLLMResponseEnd = "llm_response_end"
	MessageTypeSummary        = "summary"
)

// Metadata keys the runner and context manager read back.
const (
	MetaCompressed         = "compressed"
	MetaCompressedContent  = "compressed_content"
	MetaAssistantMessageID = "assistant_message_id"
	MetaUsage              = "usage"
)

// CreateMessageRequest contains fields for appending a message to a thread.
type CreateMessageRequest struct {
	ThreadID     string         `json:"thread_id"`
	Type         string         `json:"type"`
	IsLLMMessage bool           `json:"is_llm_message"`
	Content      any            `json:"content"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	AgentID      string         `json:"agent_id,omitempty"`
}

// MessageResponse wraps a Message row.
type MessageResponse struct {
	*ent.Message
}

// MessageListResponse contains a paginated message list.
type MessageListResponse struct {
	Messages   []*ent.Message `json:"messages"`
	TotalCount int            `json:"total_count"`
	Limit      int            `json:"limit"`
	Offset     int            `json:"offset"`
}

// ToolCall is an LLM's request to invoke a tool, either parsed from XML
// or delivered natively by the provider.
type ToolCall struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Arguments string `json:"arguments"` // JSON
}

// PreparedMessage is one entry of the LLM view of a thread: the stored
// content object with the message id attached so tools can reference the
// row it came from. It is also the canonical JSON shape persisted in the
// content column for is_llm_message rows.
type PreparedMessage struct {
	MessageID  string     `json:"message_id,omitempty"`
	Role       string     `json:"role"`
	Content    any        `json:"content"`
	ToolCalls  []ToolCall `json:"tool_calls,omitempty"`
	ToolCallID string     `json:"tool_call_id,omitempty"`
	Name       string     `json:"name,omitempty"`

	// In-memory only. CacheControl marks a prompt-cache breakpoint;
	// Compressed mirrors metadata.compressed so the context manager can
	// skip rows it already rewrote.
	CacheControl bool `json:"-"`
	Compressed   bool `json:"-"`
}

// ContentString renders the content for token estimation and truncation.
// Structured content is JSON-encoded so sizes stay stable across calls.
func (m *PreparedMessage) ContentString() string {
	switch c := m.Content.(type) {
	case nil:
		return ""
	case string:
		return c
	default:
		b, err := json.Marshal(c)
		if err != nil {
			return fmt.Sprintf("%v", c)
		}
		return string(b)
	}
}

// IsToolResult reports whether the message carries a tool execution result.
func (m *PreparedMessage) IsToolResult() bool {
	return m.Role == MessageTypeTool || m.ToolCallID != ""
}
