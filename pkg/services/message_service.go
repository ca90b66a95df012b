package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/weftlabs/weft/ent"
	"github.com/weftlabs/weft/ent/message"
	"github.com/weftlabs/weft/pkg/models"
)

// listBatchSize bounds a single LLM-history query; threads past this size
// page through ordered batches keyed by (created_at, id).
const listBatchSize = 1000

// MessageService manages conversation messages. Rows are append-only;
// the only in-place mutation is the compression sidecar written through
// MarkMessageCompressed / UpdateMessage.
type MessageService struct {
	client  *ent.Client
	threads *ThreadService
}

// NewMessageService creates a new MessageService
func NewMessageService(client *ent.Client, threads *ThreadService) *MessageService {
	return &MessageService{client: client, threads: threads}
}

// Append creates a new message row.
func (s *MessageService) Append(_ context.Context, req models.CreateMessageRequest) (*ent.Message, error) {
	if req.ThreadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if req.Type == "" {
		return nil, NewValidationError("type", "required")
	}

	content, err := encodeContent(req.Content)
	if err != nil {
		return nil, NewValidationError("content", err.Error())
	}

	// Use background context with timeout for critical write
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	builder := s.client.Message.Create().
		SetID(uuid.New().String()).
		SetThreadID(req.ThreadID).
		SetType(req.Type).
		SetIsLlmMessage(req.IsLLMMessage).
		SetContent(content)

	if req.Metadata != nil {
		builder.SetMetadata(req.Metadata)
	}
	if req.AgentID != "" {
		builder.SetAgentID(req.AgentID)
	}

	msg, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create message: %w", err)
	}

	return msg, nil
}

// encodeContent normalizes message content to the stored text form:
// strings pass through, everything else is JSON-encoded.
func encodeContent(content any) (string, error) {
	switch v := content.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		raw, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("content not JSON-encodable: %w", err)
		}
		return string(raw), nil
	}
}

// ListLLMMessages returns the thread's LLM-visible history in conversation
// order, with the compression sidecar substituted where present. Large
// threads are fetched in batches so a single query never unbounds.
func (s *MessageService) ListLLMMessages(ctx context.Context, threadID string) ([]models.PreparedMessage, error) {
	if threadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}

	var rows []*ent.Message
	offset := 0
	for {
		batch, err := s.client.Message.Query().
			Where(
				message.ThreadIDEQ(threadID),
				message.IsLlmMessageEQ(true),
			).
			Order(ent.Asc(message.FieldCreatedAt), ent.Asc(message.FieldID)).
			Offset(offset).
			Limit(listBatchSize).
			All(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to list llm messages: %w", err)
		}
		rows = append(rows, batch...)
		if len(batch) < listBatchSize {
			break
		}
		offset += listBatchSize
	}

	prepared := make([]models.PreparedMessage, 0, len(rows))
	for _, row := range rows {
		prepared = append(prepared, prepareRow(row))
	}
	return prepared, nil
}

// prepareRow converts a stored row to its LLM view, applying the
// rehydration rule: compressed rows surface metadata.compressed_content
// instead of the full stored content.
func prepareRow(row *ent.Message) models.PreparedMessage {
	pm := models.PreparedMessage{
		MessageID: row.ID,
		Role:      roleForType(row.Type),
	}

	content := row.Content
	compressed := false
	if row.Metadata != nil {
		if v, ok := row.Metadata[models.MetaCompressed].(bool); ok && v {
			if cc, ok := row.Metadata[models.MetaCompressedContent].(string); ok && cc != "" {
				content = cc
				compressed = true
			}
		}
	}
	pm.Compressed = compressed

	// Stored content may be a JSON-encoded provider message. Decode it so
	// tool calls and tool_call_id survive; a compressed sentinel that is
	// not valid JSON stays a plain string.
	var decoded map[string]any
	if err := json.Unmarshal([]byte(content), &decoded); err == nil && decoded != nil {
		applyDecoded(&pm, decoded)
		return pm
	}

	pm.Content = content
	if compressed {
		// A compressed sentinel carries none of the structure its role
		// implies (no tool_call_id, no tool_calls), so a tool or
		// assistant row would be unencodable on the provider wire.
		// Serve it as a plain user note instead.
		pm.Role = "user"
	}
	return pm
}

// applyDecoded maps a decoded content object onto the prepared message.
func applyDecoded(pm *models.PreparedMessage, decoded map[string]any) {
	if role, ok := decoded["role"].(string); ok && role != "" {
		pm.Role = role
	}
	if c, ok := decoded["content"]; ok {
		pm.Content = c
	} else {
		pm.Content = decoded
	}
	if id, ok := decoded["tool_call_id"].(string); ok {
		pm.ToolCallID = id
	}
	if name, ok := decoded["name"].(string); ok {
		pm.Name = name
	}
	rawCalls, ok := decoded["tool_calls"].([]any)
	if !ok {
		return
	}
	for _, rc := range rawCalls {
		call, ok := rc.(map[string]any)
		if !ok {
			continue
		}
		tc := models.ToolCall{}
		if id, ok := call["id"].(string); ok {
			tc.ID = id
		}
		// Native calls nest under "function"; XML-parsed ones are flat.
		fields := call
		if fn, ok := call["function"].(map[string]any); ok {
			fields = fn
		}
		tc.Name, _ = fields["name"].(string)
		if args, ok := fields["arguments"].(string); ok {
			tc.Arguments = args
		} else if raw, err := json.Marshal(fields["arguments"]); err == nil {
			tc.Arguments = string(raw)
		}
		pm.ToolCalls = append(pm.ToolCalls, tc)
	}
}

// roleForType maps stored message types to provider roles.
func roleForType(msgType string) string {
	switch msgType {
	case models.MessageTypeAssistant:
		return "assistant"
	case models.MessageTypeTool:
		return "tool"
	default:
		return "user"
	}
}

// ListMessages returns the thread's rows for UI listing, full stored
// content, conversation order. Status and accounting rows are included.
func (s *MessageService) ListMessages(ctx context.Context, threadID string, limit int) ([]*ent.Message, error) {
	if threadID == "" {
		return nil, NewValidationError("thread_id", "required")
	}
	if limit <= 0 || limit > listBatchSize {
		limit = listBatchSize
	}

	rows, err := s.client.Message.Query().
		Where(message.ThreadIDEQ(threadID)).
		Order(ent.Asc(message.FieldCreatedAt), ent.Asc(message.FieldID)).
		Limit(limit).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return rows, nil
}

// GetMessage retrieves one message by ID.
func (s *MessageService) GetMessage(ctx context.Context, messageID string) (*ent.Message, error) {
	msg, err := s.client.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get message: %w", err)
	}
	return msg, nil
}

// LatestOfType returns the newest message of the given type, or ErrNotFound.
func (s *MessageService) LatestOfType(ctx context.Context, threadID, msgType string) (*ent.Message, error) {
	msg, err := s.client.Message.Query().
		Where(
			message.ThreadIDEQ(threadID),
			message.TypeEQ(msgType),
		).
		Order(ent.Desc(message.FieldCreatedAt), ent.Desc(message.FieldID)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get latest %s message: %w", msgType, err)
	}
	return msg, nil
}

// UpdateMessage mutates content and/or metadata in place. Reserved for the
// context manager; conversation writes go through Append.
func (s *MessageService) UpdateMessage(_ context.Context, messageID string, content *string, metadata map[string]any) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	update := s.client.Message.UpdateOneID(messageID)
	if content != nil {
		update.SetContent(*content)
	}
	if metadata != nil {
		update.SetMetadata(metadata)
	}

	if err := update.Exec(ctx); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to update message: %w", err)
	}
	return nil
}

// MarkMessageCompressed persists the compression sidecar: stored content is
// untouched, metadata gains compressed=true and the compressed content.
func (s *MessageService) MarkMessageCompressed(_ context.Context, messageID, compressedContent string) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	msg, err := tx.Message.Get(ctx, messageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to get message: %w", err)
	}

	metadata := msg.Metadata
	if metadata == nil {
		metadata = make(map[string]any, 2)
	}
	metadata[models.MetaCompressed] = true
	metadata[models.MetaCompressedContent] = compressedContent

	if err := tx.Message.UpdateOneID(messageID).SetMetadata(metadata).Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark message compressed: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit compression sidecar: %w", err)
	}
	return nil
}

// FlagCacheRebuild satisfies the context manager's store contract by
// delegating to the thread service.
func (s *MessageService) FlagCacheRebuild(ctx context.Context, threadID string) error {
	return s.threads.FlagCacheRebuild(ctx, threadID)
}
