package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/api/middleware"
	"github.com/povarna/generative-ai-agents/log-classifier/internal/models"
)

func RegisterRoutes(container *restful.Container, handler *Handler) {
	ws := new(restful.WebService)

	ws.
		Path("/api/v1").
		Consumes(restful.MIME_JSON).
		Produces(restful.MIME_JSON)

	// Health endpoint
	ws.
		Route(ws.GET("health").
			To(handler.Health).
			Doc("Health check").
			Metadata(restfulspec.KeyOpenAPITags, []string{"health"}).
			Writes(HealthResponse{}).
			Returns(200, "OK", HealthResponse{}))

	ws.
		Route(ws.POST("/classify").
			To(handler.Classify).
			Doc("Classify a log message as Workflow Error, Deprecation Warning or Unclassified").
			Metadata(restfulspec.KeyOpenAPITags, []string{"classify"}).
			Reads(models.ClassificationRequest{}).
			Writes(models.ClassificationResult{}).
			Returns(200, "OK", models.ClassificationResult{}).
			Returns(400, "Bad Request", middleware.ErrorResponse{}).
			Returns(502, "Model Call Failed", middleware.ErrorResponse{}).
			Returns(504, "Model Call Timed Out", middleware.ErrorResponse{}))

	container.Add(ws)
}
