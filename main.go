package main

import (
	_ "github.com/joho/godotenv/autoload" // Autoload .env file.

	"github.com/acme/product-api/cmd/app"
)

// @securityDefinitions.apikey TokenAuth
// @in header
// @name x-access-token
// @description Short-lived bearer token issued by GET /login
func main() {
	if err := app.Start(); err != nil {
		panic(err)
	}
}
