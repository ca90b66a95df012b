package models

// Usage is the token accounting for one LLM completion. It is persisted
// as the content of an llm_response_end message and feeds both the fast
// budget check and credit deduction.
type Usage struct {
	PromptTokens             int    `json:"prompt_tokens"`
	CompletionTokens         int    `json:"completion_tokens"`
	TotalTokens              int    `json:"total_tokens"`
	CacheReadInputTokens     int    `json:"cache_read_input_tokens,omitempty"`
	CacheCreationInputTokens int    `json:"cache_creation_input_tokens,omitempty"`
	Model                    string `json:"model,omitempty"`

	// Estimated marks usage reconstructed from character counts when the
	// provider stream ended without a usage frame.
	Estimated bool `json:"estimated,omitempty"`
}

// Add accumulates another completion's usage into u.
func (u *Usage) Add(other Usage) {
	u.PromptTokens += other.PromptTokens
	u.CompletionTokens += other.CompletionTokens
	u.TotalTokens += other.TotalTokens
	u.CacheReadInputTokens += other.CacheReadInputTokens
	u.CacheCreationInputTokens += other.CacheCreationInputTokens
}

// ResponseEnd is the content of an llm_response_end row: one completion's
// accounting, keyed by the response id the billing hook deduplicates on.
type ResponseEnd struct {
	Usage         Usage  `json:"usage"`
	Model         string `json:"model"`
	LLMResponseID string `json:"llm_response_id"`
}
