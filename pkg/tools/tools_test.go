package tools

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/weftlabs/weft/ent"
)

// fakeFetcher serves messages out of a map.
type fakeFetcher struct {
	messages map[string]*ent.Message
}

func (f *fakeFetcher) GetMessage(_ context.Context, messageID string) (*ent.Message, error) {
	msg, ok := f.messages[messageID]
	if !ok {
		return nil, errors.New("not found")
	}
	return msg, nil
}

// fakeInvoker records sandbox tool invocations.
type fakeInvoker struct {
	output string
	err    error
	calls  []string
}

func (f *fakeInvoker) InvokeTool(_ context.Context, sandboxID, tool, arguments string) (string, error) {
	f.calls = append(f.calls, sandboxID+"/"+tool)
	return f.output, f.err
}

func TestRegistry_Definitions(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewWebSearchTool(nil))
	registry.Register(NewCompleteTool())
	registry.Register(NewAskTool())

	defs := registry.Definitions()
	require.Len(t, defs, 3)

	// Sorted by name so prompt bytes are stable across runs.
	assert.Equal(t, "ask", defs[0].Name)
	assert.Equal(t, "complete", defs[1].Name)
	assert.Equal(t, "web_search", defs[2].Name)

	for _, def := range defs {
		assert.NotEmpty(t, def.Description, def.Name)
		assert.Equal(t, "object", def.InputSchema["type"], def.Name)
		assert.NotContains(t, def.InputSchema, "$schema", def.Name)
		assert.NotContains(t, def.InputSchema, "$id", def.Name)
	}
}

func TestRegistry_GetAndNames(t *testing.T) {
	registry := NewRegistry()
	registry.Register(NewAskTool())

	tool, ok := registry.Get("ask")
	require.True(t, ok)
	assert.Equal(t, "ask", tool.Name())

	_, ok = registry.Get("missing")
	assert.False(t, ok)

	assert.Equal(t, []string{"ask"}, registry.Names())
}

func TestGenerateSchema_RequiredFields(t *testing.T) {
	schema := schemaToMap(GenerateSchema[WebSearchInput]())

	props, ok := schema["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "query")
	assert.Contains(t, props, "num_results")

	required, ok := schema["required"].([]any)
	require.True(t, ok)
	assert.Contains(t, required, "query")
	assert.NotContains(t, required, "num_results")

	assert.Equal(t, false, schema["additionalProperties"])
}

func TestAskTool_Execute(t *testing.T) {
	tool := NewAskTool()
	rt := Runtime{ThreadID: "thread-1"}

	t.Run("terminates with the question", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"text": "Which environment?"}`)
		assert.False(t, result.Failed())
		assert.True(t, result.Terminate)
		assert.Equal(t, "Which environment?", result.Content())
	})

	t.Run("empty text rejected", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{}`)
		assert.True(t, result.Failed())
		assert.False(t, result.Terminate)
	})

	t.Run("malformed arguments rejected", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"text": `)
		assert.True(t, result.Failed())
	})
}

func TestCompleteTool_Execute(t *testing.T) {
	tool := NewCompleteTool()
	rt := Runtime{ThreadID: "thread-1"}

	t.Run("summary passed through", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"text": "Renamed the module."}`)
		assert.True(t, result.Terminate)
		assert.Equal(t, "Renamed the module.", result.Content())
	})

	t.Run("empty arguments still terminate", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, "")
		assert.True(t, result.Terminate)
		assert.Equal(t, "Task completed.", result.Content())
	})
}

func TestExpandMessageTool_Execute(t *testing.T) {
	fetcher := &fakeFetcher{messages: map[string]*ent.Message{
		"msg-1": {ID: "msg-1", ThreadID: "thread-1", Content: "the full original output"},
		"msg-2": {ID: "msg-2", ThreadID: "other-thread", Content: "someone else's data"},
	}}
	tool := NewExpandMessageTool(fetcher)
	rt := Runtime{ThreadID: "thread-1"}

	t.Run("returns stored content", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"message_id": "msg-1"}`)
		assert.False(t, result.Failed())
		assert.Equal(t, "the full original output", result.Content())
		assert.False(t, result.Terminate)
	})

	t.Run("cross-thread lookup reads as not found", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"message_id": "msg-2"}`)
		assert.True(t, result.Failed())
		assert.Contains(t, result.Error, "message not found")
		assert.NotContains(t, result.Content(), "someone else's data")
	})

	t.Run("unknown id", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{"message_id": "msg-404"}`)
		assert.True(t, result.Failed())
	})

	t.Run("missing id", func(t *testing.T) {
		result := tool.Execute(context.Background(), rt, `{}`)
		assert.True(t, result.Failed())
	})
}

func TestWebSearchTool_Execute(t *testing.T) {
	t.Run("invokes through the sandbox", func(t *testing.T) {
		invoker := &fakeInvoker{output: `[{"title": "Go", "url": "https://go.dev"}]`}
		tool := NewWebSearchTool(invoker)
		rt := Runtime{ThreadID: "thread-1", SandboxID: "sbx-1"}

		result := tool.Execute(context.Background(), rt, `{"query": "golang"}`)
		assert.False(t, result.Failed())
		assert.Equal(t, invoker.output, result.Content())
		assert.Equal(t, []string{"sbx-1/web_search"}, invoker.calls)
	})

	t.Run("no sandbox degrades to an error result", func(t *testing.T) {
		tool := NewWebSearchTool(&fakeInvoker{})
		rt := Runtime{ThreadID: "thread-1"}

		result := tool.Execute(context.Background(), rt, `{"query": "golang"}`)
		assert.True(t, result.Failed())
		assert.Contains(t, result.Error, "not configured")
	})

	t.Run("empty query rejected before dispatch", func(t *testing.T) {
		invoker := &fakeInvoker{}
		tool := NewWebSearchTool(invoker)
		rt := Runtime{ThreadID: "thread-1", SandboxID: "sbx-1"}

		result := tool.Execute(context.Background(), rt, `{}`)
		assert.True(t, result.Failed())
		assert.Empty(t, invoker.calls)
	})

	t.Run("invoker failure recorded on the result", func(t *testing.T) {
		invoker := &fakeInvoker{err: errors.New("search backend unreachable")}
		tool := NewWebSearchTool(invoker)
		rt := Runtime{ThreadID: "thread-1", SandboxID: "sbx-1"}

		result := tool.Execute(context.Background(), rt, `{"query": "golang"}`)
		assert.True(t, result.Failed())
		assert.Contains(t, result.Error, "search backend unreachable")
	})
}

func TestResult_Content(t *testing.T) {
	assert.Equal(t, "done", Result{Output: "done"}.Content())
	assert.Equal(t, "Error: boom", Result{Error: "boom"}.Content())
	assert.True(t, Result{Error: "boom"}.Failed())
	assert.False(t, Result{Output: "ok"}.Failed())
}
