package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"text/template"

	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"go.yaml.in/yaml/v3"
)

const (
	configPathEnv     = "CLASSIFIER_CONFIG_PATH"
	defaultConfigPath = "configs/classifier.yaml"

	// probeMessage is rendered through the template during validation.
	probeMessage = "__log_message_probe__"
)

// LoadClassifierConfig reads the YAML file named by CLASSIFIER_CONFIG_PATH.
// Without the variable, configs/classifier.yaml is used when present and the
// built-in defaults otherwise.
func LoadClassifierConfig() (*ClassifierConfig, error) {
	path, explicit := os.LookupEnv(configPathEnv)
	if !explicit || path == "" {
		path = defaultConfigPath
		explicit = false
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	var cfg ClassifierConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse YAML %s: %w", path, err)
	}

	applyDefaults(&cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Default returns the configuration used when no file is present.
func Default() *ClassifierConfig {
	cfg := &ClassifierConfig{}
	applyDefaults(cfg)
	return cfg
}

func applyDefaults(cfg *ClassifierConfig) {
	if strings.TrimSpace(cfg.Classifier.Prompt) == "" {
		cfg.Classifier.Prompt = DefaultPrompt
	}
}

// Validate checks the model parameters and that the prompt template, once
// rendered, carries the log message and every label name.
func (c *ClassifierConfig) Validate() error {
	model := c.Classifier.Model
	if model.MaxTokens < 0 {
		return fmt.Errorf("invalid max_tokens %d: must not be negative", model.MaxTokens)
	}
	if model.Temperature != nil && (*model.Temperature < 0 || *model.Temperature > 2) {
		return fmt.Errorf("invalid temperature %f: must be within [0, 2]", *model.Temperature)
	}

	tmpl, err := template.New("classifier").Option("missingkey=error").Parse(c.Classifier.Prompt)
	if err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, PromptData{LogMessage: probeMessage}); err != nil {
		return fmt.Errorf("invalid prompt template: %w", err)
	}
	rendered := buf.String()

	if !strings.Contains(rendered, probeMessage) {
		return fmt.Errorf("invalid prompt template: {{.LogMessage}} is never rendered")
	}
	for _, label := range models.KnownLabels {
		if !strings.Contains(rendered, string(label)) {
			return fmt.Errorf("invalid prompt template: label %q missing", label)
		}
	}

	return nil
}
