package api_test

import (
	"context"
	"encoding/json"
	"flag"
	"net/http"
	"os"
	"testing"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup"
	"github.com/rs/zerolog"
)

// Custom flag for running integration tests with real LLM calls
var runIntegration = flag.Bool("integration", false, "Run integration tests with real LLM API calls")

/*
TEST: End-to-end deprecation message
Purpose: Real model call through the HTTP API. The label is model-dependent,
so only a mismatch is logged; a failed call fails the test.
*/
func TestAPI_Integration_Deprecation(t *testing.T) {
	if !*runIntegration {
		t.Skip("Skipping integration test - use 'go test -integration' to run with real LLM API calls")
	}

	if err := godotenv.Load("../../.env"); err != nil {
		t.Logf("Warning: No .env file found, using environment variables")
	}
	os.Setenv("CLASSIFIER_CONFIG_PATH", "../../configs/classifier.yaml")

	cfg := setup.LoadConfig()
	if cfg.Provider == setup.ProviderGroq && cfg.GroqAPIKey == "" {
		t.Skip("Skipping real Groq integration - GROQ_API_KEY not set")
	}

	logger := zerolog.Nop()
	deps, err := setup.Wire(context.Background(), cfg, &logger)
	if err != nil {
		t.Fatalf("Failed to wire dependencies: %v", err)
	}

	container := setupContainer(t, deps.Classifier)
	recorder := postClassify(t, container, []byte(`{"event_id":"it-001","log_message":"Module XYZ is deprecated, use ABC instead"}`))
	if recorder.Code != http.StatusOK {
		t.Fatalf("Expected status 200, got %d. Body: %s", recorder.Code, recorder.Body.String())
	}

	var result models.ClassificationResult
	if err := json.Unmarshal(recorder.Body.Bytes(), &result); err != nil {
		t.Fatalf("Failed to parse response: %v", err)
	}
	if result.Raw == "" {
		t.Fatal("Expected non-empty model output")
	}
	if result.Label != models.LabelDeprecationWarning {
		t.Logf("Model answered %q (label %s) instead of Deprecation Warning", result.Raw, result.Label)
	}
}
