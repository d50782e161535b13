package setup

import (
	"context"
	"fmt"
	"os"

	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/config"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm/bedrock"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/llm/gpt"
	"github.com/rs/zerolog"
)

const (
	ProviderGroq    = "groq"
	ProviderOpenAI  = "openai"
	ProviderBedrock = "bedrock"
)

type Config struct {
	Provider      string
	GroqAPIKey    string
	GroqModelID   string
	GroqBaseURL   string
	OpenAIKey     string
	OpenAIModelID string
	AWSRegion     string
	ClaudeModelID string
	LogLevel      string
}

type Dependencies struct {
	Classifier *classifier.Classifier
	LLMClient  llm.LLMClient
	Logger     *zerolog.Logger
}

func LoadConfig() *Config {
	return &Config{
		Provider:      getEnv("LLM_PROVIDER", ProviderGroq),
		GroqAPIKey:    getEnv("GROQ_API_KEY", ""),
		GroqModelID:   getEnv("GROQ_MODEL_ID", gpt.DefaultGroqModel),
		GroqBaseURL:   getEnv("GROQ_BASE_URL", gpt.GroqBaseURL),
		OpenAIKey:     getEnv("OPEN_AI_KEY", ""),
		OpenAIModelID: getEnv("OPEN_AI_MODEL_ID", ""),
		AWSRegion:     getEnv("AWS_REGION", "us-east-1"),
		ClaudeModelID: getEnv("CLAUDE_MODEL_ID", ""),
		LogLevel:      getEnv("LOG_LEVEL", "info"),
	}
}

// Wire builds the LLM client once and hands it to the classifier.
func Wire(ctx context.Context, cfg *Config, logger *zerolog.Logger) (*Dependencies, error) {
	llmClient, err := createLLMClient(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create %s client: %w", cfg.Provider, err)
	}

	classifierConfig, err := config.LoadClassifierConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load classifier config: %w", err)
	}

	cls, err := classifier.New(llmClient, classifierConfig.Classifier, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to build classifier: %w", err)
	}

	logger.Info().
		Str("provider", cfg.Provider).
		Int("max_tokens", classifierConfig.Classifier.Model.MaxTokens).
		Msg("classifier wired")

	return &Dependencies{
		Classifier: cls,
		LLMClient:  llmClient,
		Logger:     logger,
	}, nil
}

func getEnv(key string, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		value = defaultValue
	}

	return value
}

func createLLMClient(ctx context.Context, cfg *Config) (llm.LLMClient, error) {
	switch cfg.Provider {
	case ProviderGroq, "":
		return gpt.NewClient(cfg.GroqAPIKey, cfg.GroqModelID, cfg.GroqBaseURL)
	case ProviderOpenAI:
		return gpt.NewClient(cfg.OpenAIKey, cfg.OpenAIModelID, gpt.OpenAIBaseURL)
	case ProviderBedrock:
		return bedrock.NewClient(ctx, cfg.AWSRegion, cfg.ClaudeModelID)
	default:
		return nil, fmt.Errorf("unsupported llm provider: %s", cfg.Provider)
	}
}
