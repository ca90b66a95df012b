// Package tools defines the tool surface exposed to the LLM: the Tool
// interface, the registry the runner builds schemas from, and the
// builtin tools every run carries.
package tools

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"sync"

	"github.com/invopop/jsonschema"
	"go.opentelemetry.io/otel/attribute"

	"github.com/weftlabs/weft/pkg/llm"
)

// Tool is one callable exposed to the model. Execute receives the raw
// JSON arguments string exactly as the model produced it.
type Tool interface {
	Name() string
	Description() string
	GenerateSchema() *jsonschema.Schema
	Execute(ctx context.Context, rt Runtime, parameters string) Result
	TracingKVs(parameters string) ([]attribute.KeyValue, error)
}

// Runtime carries the per-run context tools execute against.
type Runtime struct {
	ThreadID  string
	ProjectID string
	SandboxID string
	AgentID   string
}

// Result is a tool execution outcome. Terminate marks terminating tools
// (ask/complete): the processor stops the auto-continue loop after them.
type Result struct {
	Output    string         `json:"output,omitempty"`
	Error     string         `json:"error,omitempty"`
	Terminate bool           `json:"-"`
	Metadata  map[string]any `json:"-"`
}

// Failed reports whether the execution errored.
func (r Result) Failed() bool { return r.Error != "" }

// Content renders the result for persistence as a tool message.
func (r Result) Content() string {
	if r.Error != "" {
		return fmt.Sprintf("Error: %s", r.Error)
	}
	return r.Output
}

// GenerateSchema reflects a JSON schema from an input struct. Inline
// definitions without $ref and closed properties keep the schema in the
// shape providers accept.
func GenerateSchema[T any]() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
	}
	var v T

	return reflector.Reflect(v)
}

// schemaToMap converts a reflected schema into the map form the provider
// adapters encode onto the wire.
func schemaToMap(s *jsonschema.Schema) map[string]any {
	raw, err := json.Marshal(s)
	if err != nil {
		return map[string]any{"type": "object"}
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		return map[string]any{"type": "object"}
	}
	// Providers reject schema/id metadata on tool parameters.
	delete(m, "$schema")
	delete(m, "$id")
	return m
}

// Registry maps tool names to instances.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Tool
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{tools: make(map[string]Tool)}
}

// Register adds a tool, replacing any previous tool with the same name.
func (r *Registry) Register(t Tool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.tools[t.Name()] = t
}

// Get returns the named tool.
func (r *Registry) Get(name string) (Tool, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.tools[name]
	return t, ok
}

// Names lists registered tool names, sorted.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Definitions returns provider-neutral tool definitions for every
// registered tool, sorted by name so prompt bytes stay stable across runs
// (prompt caching depends on it).
func (r *Registry) Definitions() []llm.ToolDefinition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	sort.Strings(names)

	defs := make([]llm.ToolDefinition, 0, len(names))
	for _, name := range names {
		t := r.tools[name]
		defs = append(defs, llm.ToolDefinition{
			Name:        t.Name(),
			Description: t.Description(),
			InputSchema: schemaToMap(t.GenerateSchema()),
		})
	}
	return defs
}
