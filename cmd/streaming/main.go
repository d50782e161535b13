package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup/logger"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/stream"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/stream/redis"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	// Setup logging
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	// Load env
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("No .env file found")
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	cfg := setup.LoadConfig()

	// Worker output is shipped as JSON
	workerLogger := logger.New(cfg.LogLevel)

	deps, err := setup.Wire(ctx, cfg, &workerLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	// Redis client
	streamCfg := &stream.StreamConfig{
		Provider: os.Getenv("STREAM_PROVIDER"),
		RedisConfig: redis.NewRedisStreamConfig(
			os.Getenv("REDIS_ADDR"),
			os.Getenv("REDIS_PASSWORD"),
			os.Getenv("LOG_EVENTS_STREAM"),
			os.Getenv("LOG_RESULTS_STREAM"),
			"",
			os.Getenv("HOSTNAME"),
		),
	}

	consumer, err := stream.NewStreamConsumer(ctx, streamCfg, deps.Classifier, &workerLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create stream consumer")
	}

	if err := consumer.Setup(ctx); err != nil {
		log.Fatal().Err(err).Msg("Failed to setup consumer")
	}

	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := consumer.Start(ctx); err != nil && !errors.Is(err, context.Canceled) {
			workerLogger.Error().Err(err).Msg("Consumer stopped with error")
		}
	}()

	log.Info().
		Str("stream", streamCfg.RedisConfig.Stream).
		Str("results", streamCfg.RedisConfig.ResultStream).
		Str("provider", cfg.Provider).
		Msg("Log classifier worker started")

	// Wait for context to be done
	<-ctx.Done()
	log.Info().Msg("Shutting down...")
	<-done

	if err := consumer.Stop(); err != nil {
		log.Warn().Err(err).Msg("Failed to close stream client")
	}

	log.Info().Msg("Log classifier worker stopped")
}
