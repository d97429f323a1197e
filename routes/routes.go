package routes

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/adiafa-dev/e-commerce-mvp/config"
	"github.com/adiafa-dev/e-commerce-mvp/controllers"
	"github.com/adiafa-dev/e-commerce-mvp/libs"
	"github.com/adiafa-dev/e-commerce-mvp/middleware"
	"github.com/adiafa-dev/e-commerce-mvp/repositories"
	"github.com/adiafa-dev/e-commerce-mvp/services"
)

func SetupRoutes(router *gin.Engine) {
	logger := config.Logger
	client := libs.NewHTTPClient(config.AppConfig.CommerceAPIURL, config.AppConfig.RequestTimeout, logger)
	signal := libs.NewCartSignal()
	store := repositories.NewCarryOverStore()

	cartRepo := repositories.NewCartRepository(client, logger)
	orderRepo := repositories.NewOrderRepository(client, logger)
	productRepo := repositories.NewProductRepository(client, logger)

	cartService := services.NewCartService(cartRepo, store, signal, logger)
	badgeService := services.NewBadgeService(cartRepo, signal, logger)
	checkoutService := services.NewCheckoutService(orderRepo, store, signal, logger)
	orderService := services.NewOrderService(orderRepo, productRepo, logger)

	cartCtrl := controllers.NewCartController(cartService, badgeService)
	checkoutCtrl := controllers.NewCheckoutController(checkoutService)
	orderCtrl := controllers.NewOrderController(orderService)
	productCtrl := controllers.NewProductController(productRepo)
	profileCtrl := controllers.NewProfileController(store)

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "ok"}) })

	router.GET("/products", productCtrl.GetProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	// The cart view and badge tolerate anonymous requests: no credential
	// simply renders an empty cart.
	optional := router.Group("/")
	optional.Use(middleware.OptionalAuthMiddleware())
	{
		optional.GET("/cart", cartCtrl.GetCart)
		optional.GET("/cart/count", cartCtrl.GetCount)
	}

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.POST("/cart/items", cartCtrl.AddItem)
		auth.PATCH("/cart/items/:id", cartCtrl.UpdateQuantity)
		auth.DELETE("/cart/items/:id", cartCtrl.RemoveItem)
		auth.DELETE("/cart/items", cartCtrl.RemoveSelected)
		auth.POST("/cart/select-all", cartCtrl.ToggleSelectAll)
		auth.POST("/cart/shops/:id/select", cartCtrl.ToggleSelectShop)
		auth.POST("/cart/items/:id/select", cartCtrl.ToggleSelectItem)
		auth.POST("/cart/checkout", cartCtrl.BeginCheckout)

		auth.GET("/checkout", checkoutCtrl.GetCheckout)
		auth.POST("/checkout", checkoutCtrl.SubmitCheckout)

		auth.GET("/orders", orderCtrl.GetOrders)
		auth.PATCH("/orders/items/:id/complete", orderCtrl.CompleteItem)
		auth.PATCH("/orders/items/:id/cancel", orderCtrl.CancelItem)

		auth.GET("/profile", profileCtrl.GetProfile)
		auth.PUT("/profile", profileCtrl.SaveProfile)
	}
}
