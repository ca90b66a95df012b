// Package sandbox talks to the external sandbox provisioner. The core
// never executes tool side effects in-process: each project gets a
// sandbox, and sandboxed tools are invoked over the provisioner's HTTP
// API.
package sandbox

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/weftlabs/weft/pkg/config"
)

// ErrDisabled is returned when no provisioner endpoint is configured.
var ErrDisabled = errors.New("sandbox service not configured")

// Sandbox is the provisioner's record of one created sandbox.
type Sandbox struct {
	ID  string `json:"id"`
	URL string `json:"url,omitempty"`
}

// Creator provisions and releases sandboxes.
type Creator interface {
	Create(ctx context.Context, projectID string) (*Sandbox, error)
	Delete(ctx context.Context, sandboxID string) error
}

// ToolInvoker runs a named tool inside a sandbox.
type ToolInvoker interface {
	InvokeTool(ctx context.Context, sandboxID, tool string, arguments string) (string, error)
}

// Client is the HTTP implementation of Creator and ToolInvoker.
type Client struct {
	http    *http.Client
	baseURL string
	logger  *slog.Logger
}

// NewClient creates a sandbox client from config. The client is usable
// even when no endpoint is configured; calls then fail with ErrDisabled
// so callers can degrade.
func NewClient(cfg *config.SandboxConfig) *Client {
	timeout := cfg.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &Client{
		http:    &http.Client{Timeout: timeout},
		baseURL: strings.TrimRight(cfg.ServiceURL, "/"),
		logger:  slog.With("component", "sandbox_client"),
	}
}

// Enabled reports whether a provisioner endpoint is configured.
func (c *Client) Enabled() bool {
	return c.baseURL != ""
}

// Create provisions a sandbox bound to the project.
func (c *Client) Create(ctx context.Context, projectID string) (*Sandbox, error) {
	if !c.Enabled() {
		return nil, ErrDisabled
	}

	body, _ := json.Marshal(map[string]string{"project_id": projectID})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/sandboxes", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("failed to build create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("sandbox create failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusCreated {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("sandbox create returned %d: %s", resp.StatusCode, respBody)
	}

	var sb Sandbox
	if err := json.NewDecoder(resp.Body).Decode(&sb); err != nil {
		return nil, fmt.Errorf("failed to decode sandbox response: %w", err)
	}
	if sb.ID == "" {
		return nil, fmt.Errorf("sandbox create returned empty id")
	}

	c.logger.Info("sandbox created", "sandbox_id", sb.ID, "project_id", projectID)
	return &sb, nil
}

// Delete releases a sandbox. A missing sandbox is not an error so rollback
// paths stay idempotent.
func (c *Client) Delete(ctx context.Context, sandboxID string) error {
	if !c.Enabled() {
		return ErrDisabled
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, c.baseURL+"/sandboxes/"+sandboxID, nil)
	if err != nil {
		return fmt.Errorf("failed to build delete request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("sandbox delete failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 && resp.StatusCode != http.StatusNotFound {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("sandbox delete returned %d: %s", resp.StatusCode, respBody)
	}
	return nil
}

// toolResponse is the provisioner's tool execution result.
type toolResponse struct {
	Output string `json:"output"`
	Error  string `json:"error,omitempty"`
}

// InvokeTool runs a sandboxed tool and returns its output. A tool-level
// failure comes back as an error carrying the sandbox's message.
func (c *Client) InvokeTool(ctx context.Context, sandboxID, tool string, arguments string) (string, error) {
	if !c.Enabled() {
		return "", ErrDisabled
	}

	args := json.RawMessage(arguments)
	if !json.Valid(args) {
		args, _ = json.Marshal(arguments)
	}
	body, _ := json.Marshal(map[string]json.RawMessage{"arguments": args})

	url := fmt.Sprintf("%s/sandboxes/%s/tools/%s", c.baseURL, sandboxID, tool)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build tool request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("sandbox tool call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return "", fmt.Errorf("sandbox tool call returned %d: %s", resp.StatusCode, respBody)
	}

	var tr toolResponse
	if err := json.NewDecoder(resp.Body).Decode(&tr); err != nil {
		return "", fmt.Errorf("failed to decode tool response: %w", err)
	}
	if tr.Error != "" {
		return "", errors.New(tr.Error)
	}
	return tr.Output, nil
}
