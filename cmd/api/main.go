package main

import (
	_ "espaco_vista/docs"
	"espaco_vista/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Espaço Vista Quoting API
// @version         1.0
// @description     Catalog, quote pricing and event billing for the venue.

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
