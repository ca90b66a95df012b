// Package llm provides streaming clients for the LLM providers behind
// the thread runner: Anthropic directly, OpenAI directly, and OpenRouter
// as the failover path for everything else.
package llm

import (
	"context"

	"github.com/weftlabs/weft/pkg/models"
)

// LLMClient is the provider-facing interface the runner streams against.
type LLMClient interface {
	// Generate sends a conversation to the LLM and returns a stream of chunks.
	// The returned channel is closed when the stream completes.
	// Mid-stream errors are delivered as ErrorChunk values in the channel;
	// errors establishing the stream are returned directly.
	Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error)

	// Close releases provider connections.
	Close() error
}

// GenerateInput is a single completion request.
type GenerateInput struct {
	ThreadID string
	RunID    string

	// Model may carry a provider prefix ("anthropic/...", "openrouter/...").
	Model string

	System string
	// SystemCacheControl marks the system prompt as a prompt-cache
	// breakpoint on providers that support one.
	SystemCacheControl bool

	Messages []models.PreparedMessage
	Tools    []ToolDefinition // nil = no tools

	MaxTokens   int
	Temperature float64
}

// ToolDefinition describes a tool available to the LLM.
type ToolDefinition struct {
	Name        string
	Description string
	InputSchema map[string]any // JSON Schema
}

// Chunk is the interface for all streaming chunk types.
type Chunk interface {
	chunkType() ChunkType
}

// ChunkType identifies the kind of streaming chunk.
type ChunkType string

const (
	ChunkTypeText     ChunkType = "text"
	ChunkTypeThinking ChunkType = "thinking"
	ChunkTypeToolCall ChunkType = "tool_call"
	ChunkTypeUsage    ChunkType = "usage"
	ChunkTypeFinish   ChunkType = "finish"
	ChunkTypeError    ChunkType = "error"
)

// TextChunk is a chunk of the LLM's text response.
type TextChunk struct{ Content string }

// ThinkingChunk is a chunk of the LLM's internal reasoning.
type ThinkingChunk struct{ Content string }

// ToolCallChunk signals a complete native tool call. Providers stream
// argument fragments; adapters buffer them and emit one chunk per call.
type ToolCallChunk struct{ CallID, Name, Arguments string }

// UsageChunk reports token consumption for this LLM call.
type UsageChunk struct {
	PromptTokens     int
	CompletionTokens int
	CacheReadTokens  int
	CacheWriteTokens int
}

// FinishChunk reports the provider's normalized finish reason:
// stop, tool_calls, or length.
type FinishChunk struct{ Reason string }

// ErrorChunk signals an error from the LLM provider.
type ErrorChunk struct {
	Message   string
	Code      string
	Retryable bool
}

func (c *TextChunk) chunkType() ChunkType     { return ChunkTypeText }
func (c *ThinkingChunk) chunkType() ChunkType { return ChunkTypeThinking }
func (c *ToolCallChunk) chunkType() ChunkType { return ChunkTypeToolCall }
func (c *UsageChunk) chunkType() ChunkType    { return ChunkTypeUsage }
func (c *FinishChunk) chunkType() ChunkType   { return ChunkTypeFinish }
func (c *ErrorChunk) chunkType() ChunkType    { return ChunkTypeError }
