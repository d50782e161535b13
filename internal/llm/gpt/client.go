package gpt

import (
	"fmt"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm"
)

const (
	GroqBaseURL      = "https://api.groq.com/openai/v1/"
	OpenAIBaseURL    = "https://api.openai.com/v1/"
	DefaultGroqModel = "llama-3.3-70b-versatile"
)

// Client talks to any OpenAI-compatible chat completion endpoint (Groq, OpenAI).
// The SDK's built-in retries are disabled: a failed call surfaces to the caller.
type Client struct {
	Client  openai.Client
	ModelID string
	BaseURL string
}

func NewClient(apiKey string, model string, baseURL string, opts ...option.RequestOption) (*Client, error) {
	if apiKey == "" {
		return nil, llm.ErrMissingAPIKey
	}
	if model == "" {
		return nil, llm.ErrMissingModel
	}
	if baseURL == "" {
		baseURL = GroqBaseURL
	}

	requestOpts := append([]option.RequestOption{
		option.WithAPIKey(apiKey),
		option.WithBaseURL(baseURL),
		option.WithMaxRetries(0),
	}, opts...)

	return &Client{
		Client:  openai.NewClient(requestOpts...),
		ModelID: model,
		BaseURL: baseURL,
	}, nil
}

func (c *Client) String() string {
	return fmt.Sprintf("chat-completions(%s @ %s)", c.ModelID, c.BaseURL)
}
