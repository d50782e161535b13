package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "classifier.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	return path
}

func TestLoadClassifierConfig_Success(t *testing.T) {
	path := writeConfig(t, `classifier:
  prompt: |
    Labels: Workflow Error, Deprecation Warning, Unclassified
    Log: {{.LogMessage}}
  model:
    max_tokens: 16
    temperature: 0.0
`)
	t.Setenv("CLASSIFIER_CONFIG_PATH", path)

	cfg, err := LoadClassifierConfig()
	if err != nil {
		t.Fatalf("LoadClassifierConfig() failed: %v", err)
	}

	if !strings.Contains(cfg.Classifier.Prompt, "Log: {{.LogMessage}}") {
		t.Errorf("Expected custom prompt, got %q", cfg.Classifier.Prompt)
	}
	if cfg.Classifier.Model.MaxTokens != 16 {
		t.Errorf("Expected max_tokens=16, got %d", cfg.Classifier.Model.MaxTokens)
	}
	if cfg.Classifier.Model.Temperature == nil || *cfg.Classifier.Model.Temperature != 0.0 {
		t.Errorf("Expected temperature=0.0, got %v", cfg.Classifier.Model.Temperature)
	}
}

func TestLoadClassifierConfig_EmptyPromptUsesDefault(t *testing.T) {
	path := writeConfig(t, "classifier:\n  model:\n    max_tokens: 8\n")
	t.Setenv("CLASSIFIER_CONFIG_PATH", path)

	cfg, err := LoadClassifierConfig()
	if err != nil {
		t.Fatalf("LoadClassifierConfig() failed: %v", err)
	}
	if cfg.Classifier.Prompt != DefaultPrompt {
		t.Errorf("Expected default prompt, got %q", cfg.Classifier.Prompt)
	}
	if cfg.Classifier.Model.Temperature != nil {
		t.Errorf("Expected temperature to stay unset, got %f", *cfg.Classifier.Model.Temperature)
	}
}

func TestLoadClassifierConfig_DefaultPathMissing(t *testing.T) {
	t.Setenv("CLASSIFIER_CONFIG_PATH", "")
	os.Unsetenv("CLASSIFIER_CONFIG_PATH")

	// configs/classifier.yaml is resolved relative to the package directory,
	// where it does not exist.
	cfg, err := LoadClassifierConfig()
	if err != nil {
		t.Fatalf("Expected defaults when default file is missing, got %v", err)
	}
	if cfg.Classifier.Prompt != DefaultPrompt {
		t.Errorf("Expected default prompt, got %q", cfg.Classifier.Prompt)
	}
}

func TestLoadClassifierConfig_RepositoryFile(t *testing.T) {
	t.Setenv("CLASSIFIER_CONFIG_PATH", "../../configs/classifier.yaml")

	cfg, err := LoadClassifierConfig()
	if err != nil {
		t.Fatalf("Shipped config failed to load: %v", err)
	}
	if cfg.Classifier.Model.MaxTokens != 0 {
		t.Errorf("Expected provider default max_tokens, got %d", cfg.Classifier.Model.MaxTokens)
	}
}

func TestLoadClassifierConfig_FileNotFound(t *testing.T) {
	t.Setenv("CLASSIFIER_CONFIG_PATH", "/nonexistent/path/classifier.yaml")

	_, err := LoadClassifierConfig()
	if err == nil {
		t.Fatal("Expected error for nonexistent config file")
	}
	if !strings.Contains(err.Error(), "failed to read config file") {
		t.Errorf("Expected 'failed to read config file' error, got: %v", err)
	}
}

func TestLoadClassifierConfig_InvalidYAML(t *testing.T) {
	path := writeConfig(t, `classifier:
  prompt: "test"
    invalid_indent:
  wrong_level
`)
	t.Setenv("CLASSIFIER_CONFIG_PATH", path)

	_, err := LoadClassifierConfig()
	if err == nil {
		t.Fatal("Expected error for invalid YAML")
	}
	if !strings.Contains(err.Error(), "failed to parse YAML") {
		t.Errorf("Expected 'failed to parse YAML' error, got: %v", err)
	}
}

func TestValidate(t *testing.T) {
	negative := -0.5
	tooHot := 3.0

	tests := []struct {
		name    string
		cfg     ClassifierConfig
		wantErr string
	}{
		{
			name: "default prompt",
			cfg:  *Default(),
		},
		{
			name:    "negative max tokens",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: DefaultPrompt, Model: ModelConfig{MaxTokens: -1}}},
			wantErr: "invalid max_tokens",
		},
		{
			name:    "negative temperature",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: DefaultPrompt, Model: ModelConfig{Temperature: &negative}}},
			wantErr: "invalid temperature",
		},
		{
			name:    "temperature too high",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: DefaultPrompt, Model: ModelConfig{Temperature: &tooHot}}},
			wantErr: "invalid temperature",
		},
		{
			name:    "broken template",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: "{{.LogMessage"}},
			wantErr: "invalid prompt template",
		},
		{
			name:    "unknown field",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: "{{.Message}} Workflow Error Deprecation Warning Unclassified"}},
			wantErr: "invalid prompt template",
		},
		{
			name:    "message never rendered",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: "Workflow Error, Deprecation Warning or Unclassified"}},
			wantErr: "{{.LogMessage}} is never rendered",
		},
		{
			name:    "fallback label missing",
			cfg:     ClassifierConfig{Classifier: Classifier{Prompt: "Workflow Error or Deprecation Warning: {{.LogMessage}}"}},
			wantErr: `label "Unclassified" missing`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil {
				t.Fatalf("expected error containing %q, got nil", tt.wantErr)
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}
}
