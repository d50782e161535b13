package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	red "github.com/povarna/generative-ai-agents/log-classifier/internal/redis"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	message := flag.String("m", "", "Log message to classify")
	source := flag.String("source", "", "Optional origin of the log message")
	eventID := flag.String("id", "", "Optional event ID (generated by the worker when empty)")
	stream := flag.String("stream", redis.DefaultStream, "Stream name")
	flag.Parse()

	if *message == "" {
		fmt.Fprintln(os.Stderr, "Usage: producer -m '<log message>'")
		flag.PrintDefaults()
		os.Exit(1)
	}

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	req := models.ClassificationRequest{
		EventID:    *eventID,
		Source:     *source,
		LogMessage: *message,
	}

	if err := run(req, *stream); err != nil {
		log.Error().Err(err).Msg("producer failed")
		os.Exit(1)
	}
}

func run(req models.ClassificationRequest, stream string) error {
	_ = godotenv.Load()

	addr := os.Getenv("REDIS_ADDR")
	if addr == "" {
		addr = "localhost:6379"
	}

	ctx := context.Background()
	client, err := red.ConnectRedis(ctx, addr, os.Getenv("REDIS_PASSWORD"), 3)
	if err != nil {
		return err
	}
	defer client.Close()

	id, err := red.PublishLogMessage(ctx, client, stream, req)
	if err != nil {
		return err
	}

	log.Info().Str("stream", stream).Str("id", id).Str("event_id", req.EventID).Msg("Published successfully!")
	return nil
}
