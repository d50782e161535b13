package main

import (
	"context"
	"errors"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/mcpadapter"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/setup/logger"
	"github.com/rs/zerolog"
)

func main() {
	// Load env
	_ = godotenv.Load()

	// Setup logging; stdout belongs to the MCP transport
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	cfg := setup.LoadConfig()
	mcpLogger := logger.NewConsole(cfg.LogLevel)

	// Graceful shutdown on SIGINT/SIGTERM
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	deps, err := setup.Wire(ctx, cfg, &mcpLogger)
	if err != nil {
		mcpLogger.Error().Err(err).Msg("Unable to load dependencies")
		os.Exit(1)
	}

	server := mcpadapter.NewServer(deps.Classifier, "1.0.0")

	// Run over stdio
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		// EOF / "server is closing" is expected when stdin closes (e.g. echo | ./bin/log-classifier-mcp)
		if errors.Is(err, io.EOF) || strings.Contains(err.Error(), "server is closing") {
			mcpLogger.Debug().Err(err).Msg("MCP server stopped")
			return
		}
		mcpLogger.Error().Err(err).Msg("Failed to run mcp server")
		os.Exit(1)
	}
}
