package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/quickhire/quickhire-api/internal/api/routes"
	"github.com/quickhire/quickhire-api/internal/config"
	"github.com/quickhire/quickhire-api/internal/db"
)

// @title QuickHire API
// @version 1.0
// @description Job board backend: postings, applications and the derived company view.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	db.Init()

	r := gin.Default()
	routes.RegisterRoutes(r)

	log.Printf("server is running on port : %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}
