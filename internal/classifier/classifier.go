// Package classifier turns a log message into a category label by asking an
// LLM. One message produces exactly one model call; the model's text is
// returned as-is and parsed into a models.Label alongside.
package classifier

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/google/uuid"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/config"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/rs/zerolog"
)

// ErrEmptyResponse is returned when the model answers with no text at all.
var ErrEmptyResponse = errors.New("classifier: model returned an empty response")

//go:generate mockgen -destination=mocks/mock_log_classifier.go -package=mocks . LogClassifier

// LogClassifier is what the HTTP, MCP and stream surfaces depend on.
type LogClassifier interface {
	ClassifyLog(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResult, error)
}

type Classifier struct {
	llmClient      llm.LLMClient
	promptTemplate *template.Template
	modelConfig    config.ModelConfig
	logger         *zerolog.Logger
}

func New(llmClient llm.LLMClient, cfg config.Classifier, logger *zerolog.Logger) (*Classifier, error) {
	if llmClient == nil {
		return nil, fmt.Errorf("classifier: llm client is nil")
	}

	prompt := cfg.Prompt
	if strings.TrimSpace(prompt) == "" {
		prompt = config.DefaultPrompt
	}

	tmpl, err := template.New("classifier").Option("missingkey=error").Parse(prompt)
	if err != nil {
		return nil, fmt.Errorf("failed to parse prompt template: %w", err)
	}

	return &Classifier{
		llmClient:      llmClient,
		promptTemplate: tmpl,
		modelConfig:    cfg.Model,
		logger:         logger,
	}, nil
}

// BuildPrompt renders the instruction template around logMessage.
func (c *Classifier) BuildPrompt(logMessage string) (string, error) {
	var buf bytes.Buffer
	if err := c.promptTemplate.Execute(&buf, config.PromptData{LogMessage: logMessage}); err != nil {
		return "", fmt.Errorf("template execution failed: %w", err)
	}
	return buf.String(), nil
}

// Classify sends one request for logMessage and returns the model's text
// unmodified. Callers bound latency through ctx.
func (c *Classifier) Classify(ctx context.Context, logMessage string) (string, error) {
	resp, err := c.invoke(ctx, logMessage)
	if err != nil {
		return "", err
	}
	return resp.Content, nil
}

// ClassifyLog classifies req.LogMessage and fills in the parsed label and call
// metadata. On failure the returned result still carries the ID, the input and
// the error text.
func (c *Classifier) ClassifyLog(ctx context.Context, req models.ClassificationRequest) (models.ClassificationResult, error) {
	now := time.Now()

	id := req.EventID
	if id == "" {
		id = uuid.NewString()
	}

	result := models.ClassificationResult{
		ID:         id,
		Source:     req.Source,
		LogMessage: req.LogMessage,
	}

	resp, err := c.invoke(ctx, req.LogMessage)
	result.Duration = time.Since(now)
	if err != nil {
		c.logger.Error().
			Err(err).
			Str("id", id).
			Dur("duration", result.Duration).
			Msg("classification failed")
		result.Error = err.Error()
		return result, err
	}

	result.Raw = resp.Content
	result.Label = models.ParseLabel(resp.Content)
	result.Model = resp.Model
	result.StopReason = resp.StopReason

	event := c.logger.Info()
	if result.Label == models.LabelUnrecognized {
		event = c.logger.Warn().Str("raw", resp.Content)
	}
	event.
		Str("id", id).
		Str("label", string(result.Label)).
		Dur("duration", result.Duration).
		Msg("log classified")

	return result, nil
}

func (c *Classifier) invoke(ctx context.Context, logMessage string) (*llm.LLMResponse, error) {
	prompt, err := c.BuildPrompt(logMessage)
	if err != nil {
		return nil, err
	}

	resp, err := c.llmClient.InvokeModel(ctx, llm.LLMRequest{
		Prompt:      prompt,
		MaxTokens:   c.modelConfig.MaxTokens,
		Temperature: c.modelConfig.Temperature,
	})
	if err != nil {
		return nil, fmt.Errorf("classify log message: %w", err)
	}

	if resp == nil || resp.Content == "" {
		return nil, ErrEmptyResponse
	}

	return resp, nil
}
