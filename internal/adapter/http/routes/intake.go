package routes

import (
	"content_factory/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathServices = "/services"
	PathIntakes  = "/intakes"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	services := rg.Group(PathServices)
	{
		services.GET("", catalogHandler.ListServices)
		services.GET("/:id", catalogHandler.GetService)
	}
}

func addIntakeRoutes(rg *gin.RouterGroup, intakeHandler *handlers.IntakeHandler) {
	intakes := rg.Group(PathIntakes)
	{
		intakes.POST("", intakeHandler.CreateIntake)
		intakes.GET("/:id", intakeHandler.GetIntake)
		intakes.PATCH("/:id/services", intakeHandler.ToggleService)
		intakes.PATCH("/:id/services/:service_id/config", intakeHandler.UpdateServiceConfig)
		intakes.PATCH("/:id/upsells", intakeHandler.ToggleUpsell)
		intakes.PATCH("/:id/details", intakeHandler.UpdateDetails)
		intakes.GET("/:id/quote", intakeHandler.GetQuote)
		intakes.GET("/:id/upsells", intakeHandler.GetUpsells)
		intakes.POST("/:id/submit", intakeHandler.SubmitIntake)
	}
}
