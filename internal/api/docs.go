package api

import (
	restfulspec "github.com/emicklei/go-restful-openapi/v2"
	"github.com/emicklei/go-restful/v3"
	"github.com/go-openapi/spec"
)

const apiDocsPath = "/apidocs.json"

// RegisterDocs serves the OpenAPI description of every web service already
// added to container. Call it after RegisterRoutes.
func RegisterDocs(container *restful.Container) {
	config := restfulspec.Config{
		WebServices:                   container.RegisteredWebServices(),
		APIPath:                       apiDocsPath,
		PostBuildSwaggerObjectHandler: enrichSwaggerObject,
	}
	container.Add(restfulspec.NewOpenAPIService(config))
}

func enrichSwaggerObject(swo *spec.Swagger) {
	swo.Info = &spec.Info{
		InfoProps: spec.InfoProps{
			Title:       "Log Classifier",
			Description: "Classifies log messages with a chat-completion model",
			Version:     version,
		},
	}
	swo.Tags = []spec.Tag{
		{TagProps: spec.TagProps{Name: "classify", Description: "Log classification"}},
		{TagProps: spec.TagProps{Name: "health", Description: "Service health"}},
	}
}
