package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"
)

// AskTool pauses the run and hands the turn back to the user with a
// question. It is a terminating tool: once it runs, the turn ends no
// matter what finish reason the provider reported.
type AskTool struct{}

// NewAskTool creates an ask tool.
func NewAskTool() *AskTool { return &AskTool{} }

// AskInput is the tool's argument schema.
type AskInput struct {
	Text        string   `json:"text" jsonschema:"description=The question or request to present to the user"`
	Attachments []string `json:"attachments,omitempty" jsonschema:"description=Optional file paths to attach for the user"`
}

// Name implements Tool.
func (t *AskTool) Name() string { return "ask" }

// Description implements Tool.
func (t *AskTool) Description() string {
	return "Ask the user a question and wait for their answer. Use when you need information or a decision you cannot proceed without."
}

// GenerateSchema implements Tool.
func (t *AskTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[AskInput]()
}

// TracingKVs implements Tool.
func (t *AskTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &AskInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		attribute.Int("text_length", len(input.Text)),
		attribute.Int("attachments", len(input.Attachments)),
	}, nil
}

// Execute implements Tool.
func (t *AskTool) Execute(_ context.Context, _ Runtime, parameters string) Result {
	input := &AskInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return Result{Error: "invalid arguments: " + err.Error()}
	}
	if input.Text == "" {
		return Result{Error: "text is required"}
	}

	return Result{
		Output:    input.Text,
		Terminate: true,
		Metadata:  map[string]any{"attachments": input.Attachments},
	}
}

// CompleteTool marks the agent's task as finished. Terminating, like ask.
type CompleteTool struct{}

// NewCompleteTool creates a complete tool.
func NewCompleteTool() *CompleteTool { return &CompleteTool{} }

// CompleteInput is the tool's argument schema.
type CompleteInput struct {
	Text string `json:"text,omitempty" jsonschema:"description=A short summary of what was accomplished"`
}

// Name implements Tool.
func (t *CompleteTool) Name() string { return "complete" }

// Description implements Tool.
func (t *CompleteTool) Description() string {
	return "Signal that the task is complete. Call this once all requested work is done and verified."
}

// GenerateSchema implements Tool.
func (t *CompleteTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[CompleteInput]()
}

// TracingKVs implements Tool.
func (t *CompleteTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &CompleteInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		attribute.Int("text_length", len(input.Text)),
	}, nil
}

// Execute implements Tool.
func (t *CompleteTool) Execute(_ context.Context, _ Runtime, parameters string) Result {
	input := &CompleteInput{}
	if parameters != "" {
		if err := json.Unmarshal([]byte(parameters), input); err != nil {
			return Result{Error: "invalid arguments: " + err.Error()}
		}
	}

	output := input.Text
	if output == "" {
		output = "Task completed."
	}
	return Result{Output: output, Terminate: true}
}

var (
	_ Tool = (*AskTool)(nil)
	_ Tool = (*CompleteTool)(nil)
)
