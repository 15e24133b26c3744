package main

import (
	"github.com/renatoambrosi/quizbacken/internal/adapter/http/routes"

	_ "github.com/joho/godotenv/autoload"
)

// @title           Quiz Payment Backend API
// @version         2.0
// @description     Mercado Pago checkout backend (card + PIX) with webhook and polling reconciliation, backed by DynamoDB.

// @contact.name   Suporte
// @contact.url    https://www.suellenseragi.com.br

// @host localhost:8080

// @BasePath  /api

func main() {
	routes.Run()
}
