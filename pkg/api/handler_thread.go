package api

import (
	"net/http"
	"strconv"

	echo "github.com/labstack/echo/v5"

	"github.com/weftlabs/weft/pkg/models"
)

// createThreadHandler handles POST /api/threads.
func (s *Server) createThreadHandler(c *echo.Context) error {
	var req models.CreateThreadRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.AccountID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "account_id field is required")
	}

	if req.Metadata == nil {
		req.Metadata = map[string]any{}
	}
	req.Metadata["created_by"] = extractAuthor(c)

	thread, err := s.threads.CreateThread(c.Request().Context(), req)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &models.ThreadResponse{Thread: thread})
}

// listMessagesHandler handles GET /api/threads/:thread_id/messages.
// Returns rows as stored, including compressed originals; the
// compressed rendering only exists in the LLM view.
func (s *Server) listMessagesHandler(c *echo.Context) error {
	threadID := c.Param("thread_id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	limit := 100
	if v := c.QueryParam("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 || n > 1000 {
			return echo.NewHTTPError(http.StatusBadRequest, "invalid limit: must be 1-1000")
		}
		limit = n
	}

	if _, err := s.threads.GetThread(c.Request().Context(), threadID); err != nil {
		return mapServiceError(err)
	}

	msgs, err := s.messages.ListMessages(c.Request().Context(), threadID, limit)
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusOK, &models.MessageListResponse{
		Messages:   msgs,
		TotalCount: len(msgs),
		Limit:      limit,
	})
}

// appendMessageHandler handles POST /api/threads/:thread_id/messages.
func (s *Server) appendMessageHandler(c *echo.Context) error {
	threadID := c.Param("thread_id")
	if threadID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "thread id is required")
	}

	var req AppendMessageRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if req.Content == nil || req.Content == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "content field is required")
	}

	if _, err := s.threads.GetThread(c.Request().Context(), threadID); err != nil {
		return mapServiceError(err)
	}

	metadata := req.Metadata
	if metadata == nil {
		metadata = map[string]any{}
	}
	metadata["author"] = extractAuthor(c)

	msg, err := s.messages.Append(c.Request().Context(), models.CreateMessageRequest{
		ThreadID:     threadID,
		Type:         models.MessageTypeUser,
		IsLLMMessage: true,
		Content:      req.Content,
		Metadata:     metadata,
	})
	if err != nil {
		return mapServiceError(err)
	}

	return c.JSON(http.StatusCreated, &models.MessageResponse{Message: msg})
}
