package llm

import "errors"

// LLMRequest is a single-turn request: Prompt is sent as the only "user" message.
// Zero MaxTokens and nil Temperature leave the provider defaults in place.
type LLMRequest struct {
	Prompt      string
	MaxTokens   int
	Temperature *float64
}

type LLMResponse struct {
	Content    string
	StopReason string
	Model      string
}

var (
	ErrMissingAPIKey = errors.New("llm: api key is required")
	ErrMissingModel  = errors.New("llm: model id is required")
	ErrNoChoices     = errors.New("llm: response contained no choices")
)
