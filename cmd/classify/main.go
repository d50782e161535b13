package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup/logger"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	timeout := flag.Duration("timeout", 0, "Per-message timeout (0 = none)")
	asJSON := flag.Bool("json", false, "Print one JSON ClassificationResult per message instead of the raw label")
	flag.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: classify [-timeout 30s] [-json] [log message ...]")
		fmt.Fprintln(os.Stderr, "Without arguments, one log message is read per stdin line.")
		flag.PrintDefaults()
	}
	flag.Parse()

	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})

	_ = godotenv.Load()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := setup.LoadConfig()
	clsLogger := logger.NewConsole(cfg.LogLevel).Level(levelOrWarn(cfg.LogLevel))

	deps, err := setup.Wire(ctx, cfg, &clsLogger)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to wire dependencies")
	}

	var messages <-chan line
	if flag.NArg() > 0 {
		messages = fromArgs(flag.Args())
	} else {
		messages = fromReader(ctx, os.Stdin)
	}

	if err := run(ctx, deps.Classifier, messages, os.Stdout, *timeout, *asJSON); err != nil {
		log.Error().Err(err).Msg("classification failed")
		os.Exit(1)
	}
}

// levelOrWarn keeps the CLI quiet unless LOG_LEVEL asks otherwise.
func levelOrWarn(level string) zerolog.Level {
	if lvl, err := zerolog.ParseLevel(level); err == nil && level != "" && level != "info" {
		return lvl
	}
	return zerolog.WarnLevel
}

// line is one input message, or the error that ended the input.
type line struct {
	text string
	err  error
}

// run classifies each message in order and stops at the first failure,
// including a failure to read the input.
func run(ctx context.Context, cls *classifier.Classifier, messages <-chan line, out io.Writer, timeout time.Duration, asJSON bool) error {
	encoder := json.NewEncoder(out)

	for msg := range messages {
		if msg.err != nil {
			return fmt.Errorf("failed to read input: %w", msg.err)
		}

		callCtx, cancel := ctx, context.CancelFunc(func() {})
		if timeout > 0 {
			callCtx, cancel = context.WithTimeout(ctx, timeout)
		}

		if asJSON {
			result, err := cls.ClassifyLog(callCtx, models.ClassificationRequest{LogMessage: msg.text})
			cancel()
			if err != nil {
				return err
			}
			if err := encoder.Encode(result); err != nil {
				return err
			}
			continue
		}

		label, err := cls.Classify(callCtx, msg.text)
		cancel()
		if err != nil {
			return err
		}
		fmt.Fprintln(out, label)
	}

	return nil
}

func fromArgs(args []string) <-chan line {
	ch := make(chan line, len(args))
	for _, arg := range args {
		ch <- line{text: arg}
	}
	close(ch)
	return ch
}

// fromReader yields one message per non-blank line of r. Lines have no length
// limit. A read error is sent as the last item.
func fromReader(ctx context.Context, r io.Reader) <-chan line {
	ch := make(chan line)
	go func() {
		defer close(ch)
		send := func(l line) bool {
			select {
			case ch <- l:
				return true
			case <-ctx.Done():
				return false
			}
		}

		reader := bufio.NewReader(r)
		for {
			text, err := reader.ReadString('\n')
			text = strings.TrimSuffix(strings.TrimSuffix(text, "\n"), "\r")
			if strings.TrimSpace(text) != "" {
				if !send(line{text: text}) {
					return
				}
			}
			if err != nil {
				if !errors.Is(err, io.EOF) {
					send(line{err: err})
				}
				return
			}
		}
	}()
	return ch
}
