package main

import (
	_ "pricing_agent/docs"
	"pricing_agent/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pricing Agent API
// @version         1.0
// @description     Per-customer price recommendations with floor enforcement and conversion estimates, backed by DynamoDB.
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
