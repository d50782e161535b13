package models

import (
	"time"
)

// Input message
type ClassificationRequest struct {
	EventID    string `json:"event_id,omitempty" jsonschema:"optional event identifier echoed back in the result"`
	Source     string `json:"source,omitempty" jsonschema:"optional name of the service that emitted the log"`
	LogMessage string `json:"log_message" jsonschema:"the log message to classify"`
}

// Final output emitted to callers and to the results stream.
// Raw is exactly what the model returned; Label is the parsed variant.
type ClassificationResult struct {
	ID         string        `json:"id"`
	Source     string        `json:"source,omitempty"`
	LogMessage string        `json:"log_message"`
	Raw        string        `json:"raw"`
	Label      Label         `json:"label"`
	Model      string        `json:"model,omitempty"`
	StopReason string        `json:"stop_reason,omitempty"`
	Duration   time.Duration `json:"duration_ns"`
	Error      string        `json:"error,omitempty"`
}
