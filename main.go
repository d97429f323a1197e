package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/adiafa-dev/e-commerce-mvp/config"
	_ "github.com/adiafa-dev/e-commerce-mvp/docs"
	"github.com/adiafa-dev/e-commerce-mvp/middleware"
	"github.com/adiafa-dev/e-commerce-mvp/routes"
)

// @title Storefront BFF API
// @description Cart, checkout and order endpoints for the storefront, backed by the remote commerce API.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	config.LoadConfig()
	config.InitLogger()
	defer config.SyncLogger()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	config.InitRedis()
	defer config.CloseRedis()

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestIDMiddleware())
	routes.SetupRoutes(router)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Environment: %s", config.AppConfig.AppEnv)
	log.Printf("Commerce API: %s", config.AppConfig.CommerceAPIURL)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
