package api

// Request bodies whose shape differs from the service-layer structs.
// creating threads, starting runs, and trigger CRUD bind the
// models.*Request types directly.

// AppendMessageRequest is the body for POST /api/threads/:thread_id/messages.
// The appended message is always a user message; assistant and tool
// messages only enter a thread through the runner.
type AppendMessageRequest struct {
	Content  any            `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
