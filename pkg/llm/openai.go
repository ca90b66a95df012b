package llm

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	openai "github.com/sashabaranov/go-openai"

	"github.com/weftlabs/weft/pkg/models"
)

// OpenRouterBaseURL is the OpenAI-compatible endpoint for openrouter
// models, used for overload failover.
const OpenRouterBaseURL = "https://openrouter.ai/api/v1"

// OpenAIClient implements LLMClient over any OpenAI-compatible chat
// completions endpoint, including OpenRouter.
type OpenAIClient struct {
	client *openai.Client
	logger *slog.Logger
}

// NewOpenAIClient creates a client against the official OpenAI API.
func NewOpenAIClient(apiKey string) *OpenAIClient {
	return newOpenAIClient(apiKey, "")
}

// NewOpenRouterClient creates a client against the OpenRouter endpoint.
func NewOpenRouterClient(apiKey string) *OpenAIClient {
	return newOpenAIClient(apiKey, OpenRouterBaseURL)
}

func newOpenAIClient(apiKey, baseURL string) *OpenAIClient {
	cfg := openai.DefaultConfig(apiKey)
	if baseURL != "" {
		cfg.BaseURL = baseURL
	}
	return &OpenAIClient{
		client: openai.NewClientWithConfig(cfg),
		logger: slog.With("component", "llm.openai"),
	}
}

// Generate starts a streaming completion and adapts it into the chunk
// channel. OpenAI streams tool call arguments as indexed fragments with
// no per-block terminator, so tool chunks are emitted once the stream
// ends.
func (c *OpenAIClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	request := buildOpenAIRequest(input)
	stream, err := c.client.CreateChatCompletionStream(ctx, request)
	if err != nil {
		return nil, fmt.Errorf("openai stream open: %w", err)
	}

	ch := make(chan Chunk, 32)
	go c.consume(ctx, stream, ch)
	return ch, nil
}

// Close releases provider connections. The HTTP client needs no teardown.
func (c *OpenAIClient) Close() error {
	return nil
}

func (c *OpenAIClient) consume(ctx context.Context, stream *openai.ChatCompletionStream, ch chan<- Chunk) {
	defer close(ch)
	defer func() { _ = stream.Close() }()

	emit := func(chunk Chunk) bool {
		select {
		case ch <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	}

	var toolCalls []openai.ToolCall
	var usage *openai.Usage
	finishReason := ""

	for {
		response, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			c.logger.Error("OpenAI stream failed", "error", err)
			emit(&ErrorChunk{Message: err.Error(), Retryable: IsOverloadedError(err)})
			return
		}

		if response.Usage != nil {
			usage = response.Usage
		}
		if len(response.Choices) == 0 {
			continue
		}
		choice := response.Choices[0]
		if choice.FinishReason != "" {
			finishReason = string(choice.FinishReason)
		}
		if choice.Delta.Content != "" && !emit(&TextChunk{Content: choice.Delta.Content}) {
			return
		}
		for _, tc := range choice.Delta.ToolCalls {
			if tc.Index == nil {
				continue
			}
			idx := *tc.Index
			for len(toolCalls) <= idx {
				toolCalls = append(toolCalls, openai.ToolCall{})
			}
			if tc.ID != "" {
				toolCalls[idx].ID = tc.ID
			}
			if tc.Function.Name != "" {
				toolCalls[idx].Function.Name = tc.Function.Name
			}
			toolCalls[idx].Function.Arguments += tc.Function.Arguments
		}
	}

	for _, tc := range toolCalls {
		if tc.Function.Name == "" {
			continue
		}
		if !emit(&ToolCallChunk{CallID: tc.ID, Name: tc.Function.Name, Arguments: argumentsOrEmpty(tc.Function.Arguments)}) {
			return
		}
	}

	if usage != nil {
		uc := &UsageChunk{
			PromptTokens:     usage.PromptTokens,
			CompletionTokens: usage.CompletionTokens,
		}
		if usage.PromptTokensDetails != nil {
			uc.CacheReadTokens = usage.PromptTokensDetails.CachedTokens
		}
		if !emit(uc) {
			return
		}
	}

	emit(&FinishChunk{Reason: normalizeOpenAIFinish(finishReason)})
}

func normalizeOpenAIFinish(reason string) string {
	switch reason {
	case "tool_calls", "function_call":
		return models.FinishReasonToolCalls
	case "length":
		return models.FinishReasonLength
	default:
		return models.FinishReasonStop
	}
}

func buildOpenAIRequest(input *GenerateInput) openai.ChatCompletionRequest {
	request := openai.ChatCompletionRequest{
		Model:         CanonicalModel(input.Model),
		Messages:      encodeOpenAIMessages(input.System, input.Messages),
		Stream:        true,
		StreamOptions: &openai.StreamOptions{IncludeUsage: true},
	}
	if ProviderFor(input.Model) == ProviderOpenRouter {
		request.Model = OpenRouterSlug(input.Model)
	}
	if input.MaxTokens > 0 {
		request.MaxTokens = input.MaxTokens
	}
	if input.Temperature > 0 {
		request.Temperature = float32(input.Temperature)
	}
	if len(input.Tools) > 0 {
		request.Tools = encodeOpenAITools(input.Tools)
	}
	return request
}

func encodeOpenAIMessages(system string, messages []models.PreparedMessage) []openai.ChatCompletionMessage {
	out := make([]openai.ChatCompletionMessage, 0, len(messages)+1)
	if system != "" {
		out = append(out, openai.ChatCompletionMessage{
			Role:    openai.ChatMessageRoleSystem,
			Content: system,
		})
	}
	for i := range messages {
		m := &messages[i]
		switch m.Role {
		case "tool":
			out = append(out, openai.ChatCompletionMessage{
				Role:       openai.ChatMessageRoleTool,
				Content:    m.ContentString(),
				ToolCallID: m.ToolCallID,
				Name:       m.Name,
			})
		case "assistant":
			msg := openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleAssistant,
				Content: m.ContentString(),
			}
			for _, tc := range m.ToolCalls {
				msg.ToolCalls = append(msg.ToolCalls, openai.ToolCall{
					ID:   tc.ID,
					Type: openai.ToolTypeFunction,
					Function: openai.FunctionCall{
						Name:      tc.Name,
						Arguments: argumentsOrEmpty(tc.Arguments),
					},
				})
			}
			out = append(out, msg)
		default:
			out = append(out, openai.ChatCompletionMessage{
				Role:    openai.ChatMessageRoleUser,
				Content: m.ContentString(),
			})
		}
	}
	return out
}

func encodeOpenAITools(tools []ToolDefinition) []openai.Tool {
	out := make([]openai.Tool, 0, len(tools))
	for _, def := range tools {
		out = append(out, openai.Tool{
			Type: openai.ToolTypeFunction,
			Function: &openai.FunctionDefinition{
				Name:        def.Name,
				Description: def.Description,
				Parameters:  def.InputSchema,
			},
		})
	}
	return out
}
