package api

import (
	"context"
	"errors"
	"net/http"

	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/classifier"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
	"github.com/rs/zerolog"
)

const version = "1.0.0"

type Handler struct {
	classifier classifier.LogClassifier
	provider   string
	logger     *zerolog.Logger
}

func NewHandler(classifier classifier.LogClassifier, provider string, logger *zerolog.Logger) *Handler {
	return &Handler{
		classifier: classifier,
		provider:   provider,
		logger:     logger,
	}
}

// POST /api/v1/classify
// Body: ClassificationRequest
// Returns: ClassificationResult
func (h *Handler) Classify(req *restful.Request, resp *restful.Response) {
	var classifyRequest models.ClassificationRequest
	if err := req.ReadEntity(&classifyRequest); err != nil {
		h.logger.Error().Err(err).Msg("Failed to parse request body")
		middleware.HandleError(resp, err, http.StatusBadRequest)
		return
	}

	h.logger.Info().
		Str("event_id", classifyRequest.EventID).
		Str("source", classifyRequest.Source).
		Int("length", len(classifyRequest.LogMessage)).
		Msg("Start classification")

	result, err := h.classifier.ClassifyLog(req.Request.Context(), classifyRequest)
	if err != nil {
		middleware.HandleError(resp, err, statusFor(err))
		return
	}

	resp.WriteHeaderAndEntity(http.StatusOK, result)
}

// Health handler GET API /api/v1/health
func (h *Handler) Health(req *restful.Request, resp *restful.Response) {
	healthResponse := HealthResponse{
		Status:   "ok",
		Version:  version,
		Provider: h.provider,
	}

	resp.WriteHeaderAndEntity(http.StatusOK, healthResponse)
}

// statusFor maps a classification failure to the status returned to the caller.
// Every failure of the upstream model is reported as a gateway error.
func statusFor(err error) int {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return http.StatusGatewayTimeout
	case errors.Is(err, context.Canceled):
		return http.StatusServiceUnavailable
	default:
		return http.StatusBadGateway
	}
}
