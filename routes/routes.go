package routes

import (
	"sticker-shop/controllers"
	"sticker-shop/middleware"
	"sticker-shop/repositories"
	"sticker-shop/services"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine, db *pgxpool.Pool, cache *redis.Client) {
	productRepo := repositories.NewProductRepository(db)
	mediaRepo := repositories.NewMediaRepository(db)
	userRepo := repositories.NewUserRepository(db)

	productCtrl := controllers.NewProductController(productRepo, mediaRepo, cache)
	mediaCtrl := controllers.NewMediaController(mediaRepo)
	authCtrl := controllers.NewAuthController(services.NewAuthService(userRepo))

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)

	router.GET("/products/list", productCtrl.ListProducts)
	router.GET("/products/i/:slug", productCtrl.GetProductBySlug)
	router.GET("/products/i", productCtrl.MissingSlug)
	router.GET("/products/i/", productCtrl.MissingSlug)
	router.GET("/products/:type", productCtrl.ListProductsByType)
	router.GET("/media/:id", mediaCtrl.GetMedia)

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.POST("/media", mediaCtrl.UploadMedia)
		admin.DELETE("/media/:id", mediaCtrl.DeleteMedia)
	}

	router.Static("/uploads", "./uploads")
}
