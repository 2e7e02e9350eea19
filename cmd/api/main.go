package main

import (
	_ "content_factory/docs"
	"content_factory/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Content Factory Intake API
// @version         1.0
// @description     Client intake service (service catalog, quotes, upsells) plus a read-only CMS dashboard, backed by DynamoDB.
// @termsOfService  http://swagger.io/terms/

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host localhost:8080

// @BasePath  /v1

func main() {
	routes.Run()
}
