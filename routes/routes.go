package routes

import (
	"cloud.google.com/go/firestore"
	language "cloud.google.com/go/language/apiv2"
	"github.com/gin-gonic/gin"

	"go-sentinel/handlers"
	"go-sentinel/pipeline"
)

func SetupRouter(firestoreClient *firestore.Client, orc *pipeline.Orchestrator, langClient *language.Client) *gin.Engine {
	r := gin.Default()

	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "go-sentinel public health alert service",
		})
	})

	// api routes
	api := r.Group("/api/sentinel")
	{
		api.POST("/cases", func(c *gin.Context) {
			handlers.CreateCase(c, firestoreClient)
		})
		api.GET("/cases/:id", func(c *gin.Context) {
			handlers.GetCase(c, firestoreClient)
		})
		api.POST("/cases/:id/check", func(c *gin.Context) {
			handlers.RunCheck(c, orc)
		})
		api.POST("/cases/:id/close", func(c *gin.Context) {
			handlers.CloseCase(c, orc)
		})

		api.POST("/locations", func(c *gin.Context) {
			handlers.IngestLocation(c, firestoreClient)
		})
		api.POST("/locations/query", func(c *gin.Context) {
			handlers.QueryExposedUIDs(c, firestoreClient)
		})

		api.POST("/surge", handlers.PredictSurge)
		api.POST("/sources/suggest", func(c *gin.Context) {
			handlers.SuggestSources(c, langClient)
		})
		api.GET("/sources/geocode", handlers.GeocodeSource)
	}

	return r
}
