package mcpadapter

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier/mocks"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"go.uber.org/mock/gomock"
)

func TestClassifyLog(t *testing.T) {
	ctrl := gomock.NewController(t)
	cls := mocks.NewMockLogClassifier(ctrl)

	expected := models.ClassificationResult{
		ID:         "evt-1",
		Source:     "ci",
		LogMessage: "Workflow 'deploy' failed at step 2",
		Raw:        "Workflow Error",
		Label:      models.LabelWorkflowError,
	}
	cls.EXPECT().
		ClassifyLog(gomock.Any(), models.ClassificationRequest{
			EventID:    "evt-1",
			Source:     "ci",
			LogMessage: "Workflow 'deploy' failed at step 2",
		}).
		Return(expected, nil).
		Times(1)

	handler := NewClassifyHandler(cls)
	callResult, result, err := handler(context.Background(), nil, models.ClassificationRequest{
		EventID:    "evt-1",
		Source:     "ci",
		LogMessage: "Workflow 'deploy' failed at step 2",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if callResult != nil {
		t.Errorf("expected nil CallToolResult so the SDK fills structured content, got %+v", callResult)
	}
	if result != expected {
		t.Errorf("expected %+v, got %+v", expected, result)
	}
}

func TestClassifyLog_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	cls := mocks.NewMockLogClassifier(ctrl)

	boom := errors.New("llm unavailable")
	cls.EXPECT().
		ClassifyLog(gomock.Any(), gomock.Any()).
		Return(models.ClassificationResult{ID: "evt-2", Error: boom.Error()}, boom)

	_, result, err := ClassifyLog(context.Background(), cls, nil, models.ClassificationRequest{LogMessage: "x"})
	if !errors.Is(err, boom) {
		t.Fatalf("expected %v, got %v", boom, err)
	}
	if result.Label != "" || result.Raw != "" {
		t.Errorf("expected empty result on failure, got %+v", result)
	}
}

func TestNewServer(t *testing.T) {
	ctrl := gomock.NewController(t)
	if server := NewServer(mocks.NewMockLogClassifier(ctrl), "1.0.0"); server == nil {
		t.Fatal("expected server")
	}
}

func connectClient(t *testing.T, server *mcp.Server) *mcp.ClientSession {
	t.Helper()
	ctx := context.Background()
	clientTransport, serverTransport := mcp.NewInMemoryTransports()

	serverSession, err := server.Connect(ctx, serverTransport, nil)
	if err != nil {
		t.Fatalf("server connect failed: %v", err)
	}
	t.Cleanup(func() { serverSession.Close() })

	client := mcp.NewClient(&mcp.Implementation{Name: "test-client", Version: "1.0.0"}, nil)
	session, err := client.Connect(ctx, clientTransport, nil)
	if err != nil {
		t.Fatalf("client connect failed: %v", err)
	}
	t.Cleanup(func() { session.Close() })
	return session
}

func TestClassifyTool_InputSchema(t *testing.T) {
	ctrl := gomock.NewController(t)
	session := connectClient(t, NewServer(mocks.NewMockLogClassifier(ctrl), "1.0.0"))

	tools, err := session.ListTools(context.Background(), &mcp.ListToolsParams{})
	if err != nil {
		t.Fatalf("ListTools failed: %v", err)
	}
	if len(tools.Tools) != 1 || tools.Tools[0].Name != ClassifyToolName {
		t.Fatalf("expected single %s tool, got %+v", ClassifyToolName, tools.Tools)
	}

	raw, err := json.Marshal(tools.Tools[0].InputSchema)
	if err != nil {
		t.Fatalf("failed to encode input schema: %v", err)
	}
	var schema struct {
		Required   []string                   `json:"required"`
		Properties map[string]json.RawMessage `json:"properties"`
	}
	if err := json.Unmarshal(raw, &schema); err != nil {
		t.Fatalf("failed to decode input schema: %v", err)
	}

	if len(schema.Required) != 1 || schema.Required[0] != "log_message" {
		t.Errorf("expected only log_message to be required, got %v", schema.Required)
	}
	for _, field := range []string{"event_id", "source", "log_message"} {
		if _, ok := schema.Properties[field]; !ok {
			t.Errorf("expected property %q in input schema", field)
		}
	}
}

func TestClassifyTool_CallWithoutEventID(t *testing.T) {
	ctrl := gomock.NewController(t)
	cls := mocks.NewMockLogClassifier(ctrl)
	cls.EXPECT().
		ClassifyLog(gomock.Any(), models.ClassificationRequest{LogMessage: "Module XYZ is deprecated, use ABC instead"}).
		Return(models.ClassificationResult{
			ID:         "generated",
			LogMessage: "Module XYZ is deprecated, use ABC instead",
			Raw:        "Deprecation Warning",
			Label:      models.LabelDeprecationWarning,
		}, nil).
		Times(1)

	session := connectClient(t, NewServer(cls, "1.0.0"))

	res, err := session.CallTool(context.Background(), &mcp.CallToolParams{
		Name:      ClassifyToolName,
		Arguments: map[string]any{"log_message": "Module XYZ is deprecated, use ABC instead"},
	})
	if err != nil {
		t.Fatalf("CallTool failed: %v", err)
	}
	if res.IsError {
		t.Fatalf("expected tool success, got error result %+v", res.Content)
	}

	raw, err := json.Marshal(res.StructuredContent)
	if err != nil {
		t.Fatalf("failed to encode structured content: %v", err)
	}
	var result models.ClassificationResult
	if err := json.Unmarshal(raw, &result); err != nil {
		t.Fatalf("failed to decode structured content: %v", err)
	}
	if result.Raw != "Deprecation Warning" || result.Label != models.LabelDeprecationWarning {
		t.Errorf("unexpected result %+v", result)
	}
}
