package config

// ClassifierConfig represents the complete classification configuration file
type ClassifierConfig struct {
	Classifier Classifier `yaml:"classifier"`
}

// Classifier holds the prompt template and the model parameters sent with it
type Classifier struct {
	Prompt string      `yaml:"prompt"`
	Model  ModelConfig `yaml:"model"`
}

// ModelConfig leaves provider defaults in place when a field is zero/nil
type ModelConfig struct {
	MaxTokens   int      `yaml:"max_tokens"`
	Temperature *float64 `yaml:"temperature"`
}

// PromptData is the value the prompt template is executed against
type PromptData struct {
	LogMessage string
}

// DefaultPrompt lists both categories and the fallback label and asks for the
// bare category name.
const DefaultPrompt = `Classify the log message into one of these categories:
(1) Workflow Error, (2) Deprecation Warning.
If you can't figure out a category, return "Unclassified".
Only return the category name. No preamble.
Log message: {{.LogMessage}}`
