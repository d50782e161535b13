package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/redis/go-redis/v9"
)

// PublishLogMessage appends req to stream as a JSON "payload" field, the
// format the stream consumer reads. It returns the entry ID.
func PublishLogMessage(ctx context.Context, client *redis.Client, stream string, req models.ClassificationRequest) (string, error) {
	payload, err := json.Marshal(req)
	if err != nil {
		return "", fmt.Errorf("failed to encode log message: %w", err)
	}

	id, err := client.XAdd(ctx, &redis.XAddArgs{
		Stream: stream,
		Values: map[string]any{"payload": string(payload)},
	}).Result()
	if err != nil {
		return "", fmt.Errorf("failed to publish to %s: %w", stream, err)
	}

	return id, nil
}
