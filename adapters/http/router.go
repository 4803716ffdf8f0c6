package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sourabh020820033/learning-path/pkg/logger"
)

func NewRouter(analysisHandler *AnalysisHandler, catalogHandler *CatalogHandler, log logger.Logger) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger(log), ErrorMiddleware(log))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		api.POST("/analyses", analysisHandler.CreateAnalysis)

		api.GET("/roles", catalogHandler.ListRoles)
		api.GET("/roles/:role", catalogHandler.GetRole)
		api.GET("/resources/:skill", catalogHandler.GetResources)
	}

	return router
}
