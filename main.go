package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/111KartoFan111/kurultai-project/cmd/app"
)

// @title           Kurultai API
// @description     Debate tournament management API.
//
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Bearer token
//
// @externalDocs.description  OpenAPI
// @externalDocs.url          https://swagger.io/resources/open-api/
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
