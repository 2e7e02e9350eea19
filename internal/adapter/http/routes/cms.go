package routes

import (
	"content_factory/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const PathCMS = "/cms"

// Read-only dashboard endpoints over the static seed dataset.
func addCMSRoutes(rg *gin.RouterGroup, cmsHandler *handlers.CMSHandler) {
	cms := rg.Group(PathCMS)
	{
		cms.GET("/users", cmsHandler.ListUsers)
		cms.GET("/orders", cmsHandler.ListOrders)
		cms.GET("/orders/:id", cmsHandler.GetOrder)
		cms.GET("/orders/:id/comments", cmsHandler.ListOrderComments)
		cms.GET("/orders/:id/timeline", cmsHandler.ListOrderTimeline)
		cms.GET("/reviews", cmsHandler.ListReviews)
		cms.GET("/stats", cmsHandler.GetStats)
	}
}
