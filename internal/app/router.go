package app

import (
	"learnsphere_backend/docs"
	"learnsphere_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())
	router.GET("/health", c.health.HealthCheck)

	api := router.Group("/api")
	{
		api.POST("/learners", c.learner.Register)
		api.POST("/learners/:id/sessions", c.session.Create)
		api.GET("/learners/:id/sessions", c.session.List)
		api.GET("/learners/:id/knowledge-gaps", c.knowledgeGap.List)
		api.POST("/generate-content", c.generate.Generate)
	}

	// Everything else belongs to the built front-end.
	router.NoRoute(c.spa.Serve)
}
