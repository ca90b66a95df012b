// Package promptcache places Anthropic prompt-cache breakpoints on a
// prepared conversation. Placement is deterministic: the same messages
// always produce the same breakpoints, so repeated calls are free.
package promptcache

import (
	"github.com/weftlabs/weft/pkg/llm"
	"github.com/weftlabs/weft/pkg/models"
)

// MaxBreakpoints is the provider limit on cache_control blocks per
// request, counting the system block.
const MaxBreakpoints = 4

// PreparedRequest carries a conversation with cache breakpoints applied.
type PreparedRequest struct {
	Messages           []models.PreparedMessage
	System             string
	SystemCacheControl bool
}

// Apply marks cache breakpoints for Anthropic-family models: one on the
// system block and the rest on the trailing user turns, so the next
// request re-reads the longest previously written prefix. Other model
// families pass through untouched.
func Apply(messages []models.PreparedMessage, system, model string) PreparedRequest {
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)
	for i := range out {
		out[i].CacheControl = false
	}

	req := PreparedRequest{Messages: out, System: system}
	if !llm.IsAnthropicModel(model) {
		return req
	}

	remaining := MaxBreakpoints
	if system != "" {
		req.SystemCacheControl = true
		remaining--
	}

	for i := len(out) - 1; i >= 0 && remaining > 0; i-- {
		if out[i].Role != "user" {
			continue
		}
		out[i].CacheControl = true
		remaining--
	}
	return req
}

// ValidateCacheBlocks enforces the breakpoint limit on an already marked
// conversation, keeping the earliest markers. systemCached counts toward
// the limit.
func ValidateCacheBlocks(messages []models.PreparedMessage, systemCached bool, limit int) []models.PreparedMessage {
	budget := limit
	if systemCached {
		budget--
	}
	out := make([]models.PreparedMessage, len(messages))
	copy(out, messages)
	for i := range out {
		if !out[i].CacheControl {
			continue
		}
		if budget > 0 {
			budget--
			continue
		}
		out[i].CacheControl = false
	}
	return out
}
