package redis

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
)

// Field names on stream entries. Input entries carry either a JSON
// ClassificationRequest under "payload" or a bare message under "log_message".
const (
	fieldPayload    = "payload"
	fieldLogMessage = "log_message"
	fieldSource     = "source"
)

// Consumer classifies log messages read from a Redis stream through a consumer
// group, one entry at a time, and appends each result to a result stream.
type Consumer struct {
	client       *redis.Client
	stream       string
	resultStream string
	groupID      string
	consumerName string
	classifier   classifier.LogClassifier
	block        time.Duration
	logger       *zerolog.Logger
}

func NewConsumer(client *redis.Client, cfg *RedisStreamConfig, cls classifier.LogClassifier, logger *zerolog.Logger) *Consumer {
	return &Consumer{
		client:       client,
		stream:       cfg.Stream,
		resultStream: cfg.ResultStream,
		groupID:      cfg.Group,
		consumerName: cfg.ConsumerName,
		classifier:   cls,
		block:        defaultBlock,
		logger:       logger,
	}
}

func (c *Consumer) Setup(ctx context.Context) error {
	err := c.client.XGroupCreateMkStream(ctx, c.stream, c.groupID, "0").Err()
	if err != nil && !strings.HasPrefix(err.Error(), "BUSYGROUP") {
		return err
	}
	return nil
}

func (c *Consumer) Start(ctx context.Context) error {
	c.logger.Info().
		Str("stream", c.stream).
		Str("result_stream", c.resultStream).
		Str("group", c.groupID).
		Str("consumer", c.consumerName).
		Msg("Consumer started")

	if n, err := c.drainPending(ctx); err != nil {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		c.logger.Error().Err(err).Msg("Failed to read pending entries")
	} else if n > 0 {
		c.logger.Info().Int("count", n).Msg("Pending entries reprocessed")
	}

	for {
		if ctx.Err() != nil {
			return ctx.Err()
		}

		if _, err := c.poll(ctx, c.block); err != nil {
			if ctx.Err() != nil {
				return ctx.Err() // context cancelled during block
			}
			c.logger.Error().Err(err).Msg("Failed to read from stream")
		}
	}
}

func (c *Consumer) Stop() error {
	return c.client.Close()
}

// drainPending reprocesses entries delivered to this consumer but never ACKed,
// e.g. after a failed publish or a shutdown mid-classification. Each entry is
// visited once; one that fails again stays pending.
func (c *Consumer) drainPending(ctx context.Context) (int, error) {
	processed := 0
	lastID := "0"

	for {
		streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
			Group:    c.groupID,
			Consumer: c.consumerName,
			Streams:  []string{c.stream, lastID},
			Count:    1,
			Block:    -1,
		}).Result()
		if err != nil {
			if errors.Is(err, redis.Nil) {
				return processed, nil
			}
			return processed, err
		}

		found := false
		for _, s := range streams {
			for _, msg := range s.Messages {
				c.process(ctx, msg)
				lastID = msg.ID
				processed++
				found = true
			}
		}
		if !found {
			return processed, nil
		}
	}
}

// poll reads at most one new entry and processes it. A negative block returns
// immediately when the stream is empty.
func (c *Consumer) poll(ctx context.Context, block time.Duration) (int, error) {
	streams, err := c.client.XReadGroup(ctx, &redis.XReadGroupArgs{
		Group:    c.groupID,
		Consumer: c.consumerName,
		Streams:  []string{c.stream, ">"},
		Count:    1,
		Block:    block,
	}).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			// timeout, no message -> loop again
			return 0, nil
		}
		return 0, err
	}

	processed := 0
	for _, s := range streams {
		for _, msg := range s.Messages {
			c.process(ctx, msg)
			processed++
		}
	}
	return processed, nil
}

func (c *Consumer) process(ctx context.Context, msg redis.XMessage) {
	c.logger.Info().Str("id", msg.ID).Msg("Message received")

	req, err := decode(msg)
	if err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to decode message")
		c.ack(ctx, msg.ID) // bad message, ACK to skip it
		return
	}
	if req.EventID == "" {
		req.EventID = msg.ID
	}

	// A failed classification is published with its error text; the entry is
	// not redelivered.
	result, err := c.classifier.ClassifyLog(ctx, req)
	if err != nil {
		result.Error = err.Error()
	}

	if err := c.publish(ctx, result); err != nil {
		c.logger.Error().Err(err).Str("id", msg.ID).Msg("Failed to publish classification")
		return // left pending for inspection via XPENDING
	}

	c.logger.Info().
		Str("id", msg.ID).
		Str("label", string(result.Label)).
		Bool("failed", result.Error != "").
		Msg("Classification published")

	c.ack(ctx, msg.ID)
}

func (c *Consumer) publish(ctx context.Context, result models.ClassificationResult) error {
	payload, err := json.Marshal(result)
	if err != nil {
		return err
	}

	return c.client.XAdd(ctx, &redis.XAddArgs{
		Stream: c.resultStream,
		Values: map[string]any{
			fieldPayload: string(payload),
			"label":      string(result.Label),
		},
	}).Err()
}

func (c *Consumer) ack(ctx context.Context, msgID string) {
	if err := c.client.XAck(ctx, c.stream, c.groupID, msgID).Err(); err != nil {
		c.logger.Error().Err(err).Str("id", msgID).Msg("Failed to ACK message")
	}
}

var errMissingFields = errors.New("entry has neither payload nor log_message field")

func decode(msg redis.XMessage) (models.ClassificationRequest, error) {
	var req models.ClassificationRequest

	if payload, ok := msg.Values[fieldPayload].(string); ok {
		if err := json.Unmarshal([]byte(payload), &req); err != nil {
			return req, err
		}
		return req, nil
	}

	logMessage, ok := msg.Values[fieldLogMessage].(string)
	if !ok {
		return req, errMissingFields
	}
	req.LogMessage = logMessage
	req.Source, _ = msg.Values[fieldSource].(string)
	return req, nil
}
