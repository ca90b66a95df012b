package models

// StreamChunk is the unit of output the runner yields to subscribers.
// Chunks flow from the response processor through the event publisher to
// SSE clients, so the shape mirrors the persisted event payload.
type StreamChunk struct {
	Type     string         `json:"type"` // status | assistant | tool | content
	Content  string         `json:"content,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Chunk types.
const (
	ChunkTypeStatus    = "status"
	ChunkTypeAssistant = "assistant"
	ChunkTypeTool      = "tool"
	ChunkTypeContent   = "content"
)

// Finish reasons surfaced on assistant completion chunks.
const (
	FinishReasonStop         = "stop"
	FinishReasonToolCalls    = "tool_calls"
	FinishReasonLength       = "length"
	FinishReasonXMLToolLimit = "xml_tool_limit_reached"
)

// Status types carried in status chunk metadata.
const (
	StatusToolStarted   = "tool_started"
	StatusToolCompleted = "tool_completed"
	StatusToolFailed    = "tool_failed"
	StatusFinish        = "finish"
	StatusError         = "error"
	StatusStopped       = "thread_run_stopped"
)

// NewContentChunk wraps a streamed text delta.
func NewContentChunk(text string) StreamChunk {
	return StreamChunk{Type: ChunkTypeContent, Content: text}
}

// NewStatusChunk builds a status chunk with the given status_type.
func NewStatusChunk(statusType string, fields map[string]any) StreamChunk {
	md := map[string]any{"status_type": statusType}
	for k, v := range fields {
		md[k] = v
	}
	return StreamChunk{Type: ChunkTypeStatus, Metadata: md}
}

// NewErrorChunk reports a run-fatal error to subscribers.
func NewErrorChunk(message string) StreamChunk {
	return NewStatusChunk(StatusError, map[string]any{"message": message})
}

// NewFinishChunk reports why a single LLM completion ended.
func NewFinishChunk(reason string) StreamChunk {
	return NewStatusChunk(StatusFinish, map[string]any{"finish_reason": reason})
}

// IsTerminal reports whether the chunk ends the whole run, not just one
// LLM completion.
func (c StreamChunk) IsTerminal() bool {
	if c.Type != ChunkTypeStatus || c.Metadata == nil {
		return false
	}
	st, _ := c.Metadata["status_type"].(string)
	if st == StatusError || st == StatusStopped {
		return true
	}
	terminate, _ := c.Metadata["agent_should_terminate"].(bool)
	return terminate
}
