package llm

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	sdk "github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/anthropics/anthropic-sdk-go/packages/ssestream"

	"github.com/weftlabs/weft/pkg/models"
)

// AnthropicClient implements LLMClient on top of the Anthropic Messages API.
type AnthropicClient struct {
	client sdk.Client
	logger *slog.Logger
}

// NewAnthropicClient creates a client using the given API key.
func NewAnthropicClient(apiKey string) *AnthropicClient {
	return &AnthropicClient{
		client: sdk.NewClient(option.WithAPIKey(apiKey)),
		logger: slog.With("component", "llm.anthropic"),
	}
}

// Generate starts a streaming completion and adapts provider events into
// the chunk channel.
func (c *AnthropicClient) Generate(ctx context.Context, input *GenerateInput) (<-chan Chunk, error) {
	params, err := BuildAnthropicParams(input)
	if err != nil {
		return nil, fmt.Errorf("failed to build anthropic request: %w", err)
	}

	stream := c.client.Messages.NewStreaming(ctx, params)
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("anthropic stream open: %w", err)
	}

	ch := make(chan Chunk, 32)
	go c.consume(ctx, stream, ch)
	return ch, nil
}

// Close releases provider connections. The HTTP client needs no teardown.
func (c *AnthropicClient) Close() error {
	return nil
}

// CountTokens calls the first-party count-tokens endpoint with the same
// encoded shape a generation would send.
func (c *AnthropicClient) CountTokens(ctx context.Context, model, system string, messages []models.PreparedMessage) (int, error) {
	msgs, err := EncodeAnthropicMessages(messages)
	if err != nil {
		return 0, err
	}
	params := sdk.MessageCountTokensParams{
		Model:    sdk.Model(CanonicalModel(model)),
		Messages: msgs,
	}
	if system != "" {
		params.System = sdk.MessageCountTokensParamsSystemUnion{
			OfTextBlockArray: []sdk.TextBlockParam{{Text: system}},
		}
	}
	result, err := c.client.Messages.CountTokens(ctx, params)
	if err != nil {
		return 0, fmt.Errorf("anthropic count tokens: %w", err)
	}
	return int(result.InputTokens), nil
}

func (c *AnthropicClient) consume(ctx context.Context, stream *ssestream.Stream[sdk.MessageStreamEventUnion], ch chan<- Chunk) {
	defer close(ch)
	defer func() { _ = stream.Close() }()

	// Tool use blocks stream argument fragments keyed by block index;
	// buffer until the block stops.
	type toolBuffer struct {
		id, name  string
		fragments []string
	}
	toolBlocks := make(map[int]*toolBuffer)
	stopReason := ""

	emit := func(chunk Chunk) bool {
		select {
		case ch <- chunk:
			return true
		case <-ctx.Done():
			return false
		}
	}

	for stream.Next() {
		event := stream.Current()
		switch ev := event.AsAny().(type) {
		case sdk.MessageStartEvent:
			toolBlocks = make(map[int]*toolBuffer)
			stopReason = ""

		case sdk.ContentBlockStartEvent:
			if toolUse, ok := ev.ContentBlock.AsAny().(sdk.ToolUseBlock); ok {
				toolBlocks[int(ev.Index)] = &toolBuffer{id: toolUse.ID, name: toolUse.Name}
			}

		case sdk.ContentBlockDeltaEvent:
			switch delta := ev.Delta.AsAny().(type) {
			case sdk.TextDelta:
				if delta.Text != "" && !emit(&TextChunk{Content: delta.Text}) {
					return
				}
			case sdk.ThinkingDelta:
				if delta.Thinking != "" && !emit(&ThinkingChunk{Content: delta.Thinking}) {
					return
				}
			case sdk.InputJSONDelta:
				if tb := toolBlocks[int(ev.Index)]; tb != nil && delta.PartialJSON != "" {
					tb.fragments = append(tb.fragments, delta.PartialJSON)
				}
			}

		case sdk.ContentBlockStopEvent:
			if tb := toolBlocks[int(ev.Index)]; tb != nil {
				delete(toolBlocks, int(ev.Index))
				args := joinFragments(tb.fragments)
				if !emit(&ToolCallChunk{CallID: tb.id, Name: tb.name, Arguments: args}) {
					return
				}
			}

		case sdk.MessageDeltaEvent:
			stopReason = string(ev.Delta.StopReason)
			if !emit(&UsageChunk{
				PromptTokens:     int(ev.Usage.InputTokens),
				CompletionTokens: int(ev.Usage.OutputTokens),
				CacheReadTokens:  int(ev.Usage.CacheReadInputTokens),
				CacheWriteTokens: int(ev.Usage.CacheCreationInputTokens),
			}) {
				return
			}

		case sdk.MessageStopEvent:
			if !emit(&FinishChunk{Reason: normalizeAnthropicStop(stopReason)}) {
				return
			}
		}
	}

	if err := stream.Err(); err != nil {
		c.logger.Error("Anthropic stream failed", "error", err)
		emit(&ErrorChunk{Message: err.Error(), Retryable: IsOverloadedError(err)})
	}
}

func joinFragments(fragments []string) string {
	joined := strings.Join(fragments, "")
	if joined == "" {
		return "{}"
	}
	return joined
}

func normalizeAnthropicStop(reason string) string {
	switch reason {
	case "tool_use":
		return models.FinishReasonToolCalls
	case "max_tokens":
		return models.FinishReasonLength
	default:
		return models.FinishReasonStop
	}
}

// BuildAnthropicParams converts a GenerateInput to Messages API params.
// Exported because the token counter sends the identical shape through
// the count-tokens endpoint.
func BuildAnthropicParams(input *GenerateInput) (sdk.MessageNewParams, error) {
	msgs, err := EncodeAnthropicMessages(input.Messages)
	if err != nil {
		return sdk.MessageNewParams{}, err
	}

	params := sdk.MessageNewParams{
		MaxTokens: int64(input.MaxTokens),
		Messages:  msgs,
		Model:     sdk.Model(CanonicalModel(input.Model)),
	}
	if input.System != "" {
		block := sdk.TextBlockParam{Text: input.System}
		if input.SystemCacheControl {
			block.CacheControl = sdk.NewCacheControlEphemeralParam()
		}
		params.System = []sdk.TextBlockParam{block}
	}
	if len(input.Tools) > 0 {
		params.Tools = encodeAnthropicTools(input.Tools)
	}
	if input.Temperature > 0 {
		params.Temperature = sdk.Float(input.Temperature)
	}
	return params, nil
}

// EncodeAnthropicMessages maps the prepared conversation onto Anthropic
// message params. Consecutive tool results fold into a single user turn,
// which the API requires after an assistant tool_use turn.
func EncodeAnthropicMessages(messages []models.PreparedMessage) ([]sdk.MessageParam, error) {
	conversation := make([]sdk.MessageParam, 0, len(messages))

	var pendingResults []sdk.ContentBlockParamUnion
	flushResults := func() {
		if len(pendingResults) > 0 {
			conversation = append(conversation, sdk.NewUserMessage(pendingResults...))
			pendingResults = nil
		}
	}

	for i := range messages {
		m := &messages[i]
		switch m.Role {
		case "tool":
			block := sdk.NewToolResultBlock(m.ToolCallID, m.ContentString(), false)
			if m.CacheControl {
				markLastBlockCached(&block)
			}
			pendingResults = append(pendingResults, block)

		case "assistant":
			flushResults()
			blocks := make([]sdk.ContentBlockParamUnion, 0, 1+len(m.ToolCalls))
			if text := m.ContentString(); text != "" {
				blocks = append(blocks, sdk.NewTextBlock(text))
			}
			for _, tc := range m.ToolCalls {
				blocks = append(blocks, sdk.NewToolUseBlock(tc.ID, json.RawMessage(argumentsOrEmpty(tc.Arguments)), tc.Name))
			}
			if len(blocks) == 0 {
				continue
			}
			if m.CacheControl {
				markLastBlockCached(&blocks[len(blocks)-1])
			}
			conversation = append(conversation, sdk.NewAssistantMessage(blocks...))

		default:
			// user and anything unrecognized render as user text
			flushResults()
			text := m.ContentString()
			if text == "" {
				continue
			}
			block := sdk.NewTextBlock(text)
			if m.CacheControl {
				markLastBlockCached(&block)
			}
			conversation = append(conversation, sdk.NewUserMessage(block))
		}
	}
	flushResults()

	if len(conversation) == 0 {
		return nil, fmt.Errorf("at least one user or assistant message is required")
	}
	return conversation, nil
}

func markLastBlockCached(block *sdk.ContentBlockParamUnion) {
	switch {
	case block.OfText != nil:
		block.OfText.CacheControl = sdk.NewCacheControlEphemeralParam()
	case block.OfToolResult != nil:
		block.OfToolResult.CacheControl = sdk.NewCacheControlEphemeralParam()
	case block.OfToolUse != nil:
		block.OfToolUse.CacheControl = sdk.NewCacheControlEphemeralParam()
	}
}

func argumentsOrEmpty(args string) string {
	if args == "" {
		return "{}"
	}
	return args
}

func encodeAnthropicTools(tools []ToolDefinition) []sdk.ToolUnionParam {
	out := make([]sdk.ToolUnionParam, 0, len(tools))
	for _, def := range tools {
		u := sdk.ToolUnionParamOfTool(encodeAnthropicSchema(def.InputSchema), def.Name)
		if u.OfTool != nil && def.Description != "" {
			u.OfTool.Description = sdk.String(def.Description)
		}
		out = append(out, u)
	}
	return out
}

// encodeAnthropicSchema splits a JSON Schema map into the typed param
// fields. The top-level "type" is fixed to object by the SDK, so it is
// dropped to avoid a duplicate key.
func encodeAnthropicSchema(schema map[string]any) sdk.ToolInputSchemaParam {
	p := sdk.ToolInputSchemaParam{}
	if schema == nil {
		return p
	}
	extra := make(map[string]any)
	for k, v := range schema {
		switch k {
		case "type":
		case "properties":
			p.Properties = v
		case "required":
			p.Required = toStringSlice(v)
		default:
			extra[k] = v
		}
	}
	if len(extra) > 0 {
		p.ExtraFields = extra
	}
	return p
}

func toStringSlice(v any) []string {
	switch vals := v.(type) {
	case []string:
		return vals
	case []any:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			if s, ok := item.(string); ok {
				out = append(out, s)
			}
		}
		return out
	default:
		return nil
	}
}
