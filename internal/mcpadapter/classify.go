package mcpadapter

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
)

const ClassifyToolName = "classify_log"

// NewServer exposes the classifier as a single MCP tool. The tool input is
// models.ClassificationRequest, the same body the HTTP API reads.
func NewServer(cls classifier.LogClassifier, version string) *mcp.Server {
	server := mcp.NewServer(
		&mcp.Implementation{
			Name:    "log-classifier",
			Version: version,
		}, nil,
	)

	mcp.AddTool(server, &mcp.Tool{
		Name:        ClassifyToolName,
		Description: "Classify a log message as Workflow Error, Deprecation Warning or Unclassified. The raw model answer is returned in 'raw'; 'label' is Unrecognized when the answer is none of those.",
	}, NewClassifyHandler(cls))

	return server
}

// NewClassifyHandler returns a tool handler that uses the given classifier.
// Pass the returned function to mcp.AddTool.
func NewClassifyHandler(cls classifier.LogClassifier) func(context.Context, *mcp.CallToolRequest, models.ClassificationRequest) (*mcp.CallToolResult, models.ClassificationResult, error) {
	return func(ctx context.Context, req *mcp.CallToolRequest, input models.ClassificationRequest) (*mcp.CallToolResult, models.ClassificationResult, error) {
		return ClassifyLog(ctx, cls, req, input)
	}
}

// ClassifyLog runs one classification and returns the result. A failed model
// call is returned as the tool error.
func ClassifyLog(
	ctx context.Context,
	cls classifier.LogClassifier,
	req *mcp.CallToolRequest,
	input models.ClassificationRequest,
) (*mcp.CallToolResult, models.ClassificationResult, error) {
	result, err := cls.ClassifyLog(ctx, input)
	if err != nil {
		return nil, models.ClassificationResult{}, err
	}

	return nil, result, nil
}
