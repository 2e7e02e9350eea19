package routes

import (
	"log"
	"strconv"

	_ "content_factory/docs" // This will be auto-generated
	"content_factory/internal/adapter/http/handlers"
	repository2 "content_factory/internal/adapter/persistence/repository"
	"content_factory/internal/infrastructure/database"
	"content_factory/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	intakeRepo := repository2.NewIntakeDynamoRepository(ddb)
	intakeUseCase := usecase.NewIntakeUseCase(intakeRepo)

	intakeHandler := handlers.NewIntakeHandler(intakeUseCase)
	catalogHandler := handlers.NewCatalogHandler()
	cmsHandler := handlers.NewCMSHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addCatalogRoutes(v1, catalogHandler)
	addIntakeRoutes(v1, intakeHandler)
	addCMSRoutes(v1, cmsHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
