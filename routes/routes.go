package routes

import (
	"log"
	"net/http"

	"bananina-api/config"
	"bananina-api/controllers"
	"bananina-api/middleware"
	"bananina-api/models"
	"bananina-api/repositories"
	"bananina-api/services"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func SetupRoutes(router *gin.Engine) {
	router.HandleMethodNotAllowed = true

	mailer, err := services.NewEmailService()
	if err != nil {
		log.Println("Email disabled:", err)
	}

	checkoutService := services.NewCheckoutService(
		repositories.NewCheckoutRepository(config.DB),
		mailer,
		config.AppConfig.ShippingFlatRate,
	)

	authCtrl := controllers.NewAuthController()
	productCtrl := controllers.NewProductController()
	catalogCtrl := controllers.NewCatalogController()
	cartCtrl := controllers.NewCartController()
	orderCtrl := controllers.NewOrderController(checkoutService)
	adminOrderCtrl := controllers.NewAdminOrderController()

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "ok"}) })

	router.POST("/auth/register", authCtrl.Register)
	router.POST("/auth/login", authCtrl.Login)
	router.GET("/categories", catalogCtrl.GetAllCategories)
	router.GET("/brands", catalogCtrl.GetAllBrands)
	router.GET("/products", productCtrl.GetAllProducts)
	router.GET("/products/:id", productCtrl.GetProductByID)

	auth := router.Group("/")
	auth.Use(middleware.AuthMiddleware())
	{
		auth.GET("/auth/profile", authCtrl.GetProfile)

		auth.GET("/cart", cartCtrl.GetCart)
		auth.POST("/cart", cartCtrl.AddToCart)
		auth.PATCH("/cart/:id", cartCtrl.UpdateCartItem)
		auth.DELETE("/cart/:id", cartCtrl.RemoveCartItem)

		auth.POST("/orders", orderCtrl.CreateOrder)
		auth.GET("/orders", orderCtrl.GetMyOrders)
		auth.GET("/orders/:id", orderCtrl.GetOrderByID)
	}

	admin := router.Group("/admin")
	admin.Use(middleware.AuthMiddleware(), middleware.AdminMiddleware())
	{
		admin.POST("/categories", catalogCtrl.CreateCategory)
		admin.PATCH("/categories/:id", catalogCtrl.UpdateCategory)
		admin.DELETE("/categories/:id", catalogCtrl.DeleteCategory)

		admin.POST("/brands", catalogCtrl.CreateBrand)
		admin.PATCH("/brands/:id", catalogCtrl.UpdateBrand)
		admin.DELETE("/brands/:id", catalogCtrl.DeleteBrand)

		admin.POST("/products", productCtrl.CreateProduct)
		admin.PATCH("/products/:id", productCtrl.UpdateProduct)
		admin.DELETE("/products/:id", productCtrl.DeleteProduct)

		admin.GET("/orders", adminOrderCtrl.GetAllOrders)
		admin.GET("/orders/:id", adminOrderCtrl.GetOrderByID)
		admin.PUT("/orders/:id/shipping", adminOrderCtrl.UpdateShipping)
	}

	router.Static("/assets/images", config.AppConfig.UploadDir)

	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed,
			models.NewErrorResponse(models.ErrorTypeRequest, "Method not allowed"))
	})
}
