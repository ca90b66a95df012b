package config

import "time"

// LLMConfig holds provider credentials and runner-facing LLM behavior.
// API keys are referenced by environment variable name, never stored.
type LLMConfig struct {
	// DefaultModel is used when neither the run request nor the agent
	// specifies a model. May carry a provider prefix ("anthropic/...").
	DefaultModel string `yaml:"default_model"`

	// Environment variable names holding provider API keys.
	AnthropicAPIKeyEnv  string `yaml:"anthropic_api_key_env,omitempty"`
	OpenAIAPIKeyEnv     string `yaml:"openai_api_key_env,omitempty"`
	OpenRouterAPIKeyEnv string `yaml:"openrouter_api_key_env,omitempty"`

	// MaxTokens caps completion length per LLM call.
	MaxTokens int `yaml:"max_tokens"`

	// Temperature for sampling; zero means provider default.
	Temperature float64 `yaml:"temperature"`

	// RequestTimeout bounds a single streaming LLM call.
	RequestTimeout time.Duration `yaml:"request_timeout"`

	// MaxAutoContinues caps how many times one run may loop back into the
	// LLM after tool calls or length cutoffs.
	MaxAutoContinues int `yaml:"max_auto_continues"`

	// MaxXMLToolCalls caps tool invocations parsed from a single response.
	// Zero means unlimited.
	MaxXMLToolCalls int `yaml:"max_xml_tool_calls"`
}

// DefaultLLMConfig returns the built-in LLM defaults.
func DefaultLLMConfig() *LLMConfig {
	return &LLMConfig{
		DefaultModel:        "anthropic/claude-sonnet-4-20250514",
		AnthropicAPIKeyEnv:  "ANTHROPIC_API_KEY",
		OpenAIAPIKeyEnv:     "OPENAI_API_KEY",
		OpenRouterAPIKeyEnv: "OPENROUTER_API_KEY",
		MaxTokens:           8192,
		RequestTimeout:      5 * time.Minute,
		MaxAutoContinues:    25,
		MaxXMLToolCalls:     0,
	}
}
