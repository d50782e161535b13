package gpt

import (
	"context"
	"fmt"

	"github.com/openai/openai-go"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm"
)

func (c *Client) InvokeModel(ctx context.Context, request llm.LLMRequest) (*llm.LLMResponse, error) {
	message := openai.ChatCompletionNewParams{
		Messages: []openai.ChatCompletionMessageParamUnion{
			openai.UserMessage(request.Prompt),
		},
		Model: openai.ChatModel(c.ModelID),
	}
	if request.MaxTokens > 0 {
		message.MaxCompletionTokens = openai.Int(int64(request.MaxTokens))
	}
	if request.Temperature != nil {
		message.Temperature = openai.Float(*request.Temperature)
	}

	output, err := c.Client.Chat.Completions.New(ctx, message)
	if err != nil {
		return nil, fmt.Errorf("unable to invoke chat completion model %s: %w", c.ModelID, err)
	}

	if len(output.Choices) == 0 {
		return nil, llm.ErrNoChoices
	}

	response := output.Choices[0]
	return &llm.LLMResponse{
		Content:    response.Message.Content,
		StopReason: string(response.FinishReason),
		Model:      output.Model,
	}, nil
}
