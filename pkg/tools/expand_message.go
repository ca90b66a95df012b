package tools

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weftlabs/weft/ent"
)

// MessageFetcher is the slice of the message store expand_message needs.
type MessageFetcher interface {
	GetMessage(ctx context.Context, messageID string) (*ent.Message, error)
}

// ExpandMessageTool retrieves the full original content of a message the
// context manager compressed. The compression sentinel names this tool,
// so the model can recover any detail it finds itself missing.
type ExpandMessageTool struct {
	messages MessageFetcher
}

// NewExpandMessageTool creates an expand_message tool over the message store.
func NewExpandMessageTool(messages MessageFetcher) *ExpandMessageTool {
	return &ExpandMessageTool{messages: messages}
}

// ExpandMessageInput is the tool's argument schema.
type ExpandMessageInput struct {
	MessageID string `json:"message_id" jsonschema:"description=The message_id referenced by a truncated message"`
}

// Name implements Tool.
func (t *ExpandMessageTool) Name() string { return "expand_message" }

// Description implements Tool.
func (t *ExpandMessageTool) Description() string {
	return "Retrieve the full original content of an earlier message that was truncated for token management. Pass the message_id quoted in the truncation notice."
}

// GenerateSchema implements Tool.
func (t *ExpandMessageTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[ExpandMessageInput]()
}

// TracingKVs implements Tool.
func (t *ExpandMessageTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &ExpandMessageInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		attribute.String("message_id", input.MessageID),
	}, nil
}

// Execute implements Tool: it returns the stored content, which
// compression never rewrites.
func (t *ExpandMessageTool) Execute(ctx context.Context, rt Runtime, parameters string) Result {
	input := &ExpandMessageInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return Result{Error: "invalid arguments: " + err.Error()}
	}
	if input.MessageID == "" {
		return Result{Error: "message_id is required"}
	}

	msg, err := t.messages.GetMessage(ctx, input.MessageID)
	if err != nil {
		return Result{Error: "message not found: " + input.MessageID}
	}
	if msg.ThreadID != rt.ThreadID {
		// Never leak content across threads.
		return Result{Error: "message not found: " + input.MessageID}
	}

	return Result{Output: msg.Content}
}

var _ Tool = (*ExpandMessageTool)(nil)

// errNotConfigured is shared by tools whose backend is optional.
var errNotConfigured = errors.New("tool backend not configured")
