package main

import (
	_ "pizzamaster/docs"
	"pizzamaster/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Pizza Master POS API
// @version         1.0
// @description     Point-of-sale core for the Pizza Master restaurant (catalogs, cart, orders, monthly sales) backed by DynamoDB.

// @contact.name   API Support

// @host localhost:8080

// @BasePath  /v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	routes.Run()
}
