package main

import (
	"log"
	"os"
	"sticker-shop/config"
	_ "sticker-shop/docs"
	"sticker-shop/middleware"
	"sticker-shop/routes"

	"github.com/gin-gonic/gin"
)

// @title Sticker Shop API
// @description Catalog backend for the sticker storefront
// @version 1.0
func main() {
	config.LoadConfig()

	if config.AppConfig.AppEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}

	db := config.ConnectDB()
	defer db.Close()

	cache := config.ConnectRedis()
	if cache != nil {
		defer cache.Close()
	}

	if err := os.MkdirAll(config.AppConfig.UploadDir, os.ModePerm); err != nil {
		log.Fatalf("Failed to create upload directory: %v", err)
	}

	router := gin.Default()
	router.Use(middleware.CORSMiddleware())
	routes.SetupRoutes(router, db, cache)

	port := ":" + config.AppConfig.Port
	log.Printf("Server starting on port %s", port)
	log.Printf("Swagger UI: http://localhost:%s/swagger/index.html", config.AppConfig.Port)

	if err := router.Run(port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
