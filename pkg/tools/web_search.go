package tools

import (
	"context"
	"encoding/json"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weftlabs/weft/pkg/sandbox"
)

// WebSearchTool runs a search through the run's sandbox, keeping outbound
// network traffic out of the core process.
type WebSearchTool struct {
	invoker sandbox.ToolInvoker
}

// NewWebSearchTool creates a web_search tool over the sandbox invoker.
func NewWebSearchTool(invoker sandbox.ToolInvoker) *WebSearchTool {
	return &WebSearchTool{invoker: invoker}
}

// WebSearchInput is the tool's argument schema.
type WebSearchInput struct {
	Query      string `json:"query" jsonschema:"description=The search query"`
	NumResults int    `json:"num_results,omitempty" jsonschema:"description=How many results to return,default=5"`
}

// Name implements Tool.
func (t *WebSearchTool) Name() string { return "web_search" }

// Description implements Tool.
func (t *WebSearchTool) Description() string {
	return "Search the web and return result titles, URLs and snippets."
}

// GenerateSchema implements Tool.
func (t *WebSearchTool) GenerateSchema() *jsonschema.Schema {
	return GenerateSchema[WebSearchInput]()
}

// TracingKVs implements Tool.
func (t *WebSearchTool) TracingKVs(parameters string) ([]attribute.KeyValue, error) {
	input := &WebSearchInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return nil, err
	}
	return []attribute.KeyValue{
		attribute.String("query", input.Query),
		attribute.Int("num_results", input.NumResults),
	}, nil
}

// Execute implements Tool.
func (t *WebSearchTool) Execute(ctx context.Context, rt Runtime, parameters string) Result {
	input := &WebSearchInput{}
	if err := json.Unmarshal([]byte(parameters), input); err != nil {
		return Result{Error: "invalid arguments: " + err.Error()}
	}
	if input.Query == "" {
		return Result{Error: "query is required"}
	}
	if t.invoker == nil || rt.SandboxID == "" {
		return Result{Error: errNotConfigured.Error()}
	}

	output, err := t.invoker.InvokeTool(ctx, rt.SandboxID, t.Name(), parameters)
	if err != nil {
		return Result{Error: err.Error()}
	}
	return Result{Output: output}
}

var _ Tool = (*WebSearchTool)(nil)
