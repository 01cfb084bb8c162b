package routes

import (
	"net/http"

	"swiftcart-backend/controllers"
	"swiftcart-backend/middlewares"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/mongo"
)

// Setup configures and returns the Gin engine.
func Setup(ctrl *controllers.Controller, db *mongo.Database, env string) *gin.Engine {
	if env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.Default()

	config := cors.DefaultConfig()
	config.AllowOrigins = []string{"http://localhost:3000", "http://127.0.0.1:3000", "http://localhost:5173"}
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Authorization"}
	r.Use(cors.New(config))
	r.Use(middlewares.ErrorHandler())

	adminOnly := middlewares.AdminOnly(db)

	api := r.Group("/api/v1")
	{
		user := api.Group("/user")
		{
			user.POST("/new", ctrl.Register)
			user.POST("/login", ctrl.Login)
			user.GET("/all", adminOnly, ctrl.AllUsers)
			user.GET("/:id", ctrl.GetUser)
			user.DELETE("/:id", adminOnly, ctrl.DeleteUser)
		}

		product := api.Group("/product")
		{
			product.POST("/new", adminOnly, ctrl.NewProduct)
			product.GET("/latest", ctrl.GetLatestProducts)
			product.GET("/categories", ctrl.GetCategories)
			product.GET("/admin-products", adminOnly, ctrl.GetAdminProducts)
			product.GET("/all", ctrl.SearchProducts)
			product.GET("/:id", ctrl.GetProduct)
			product.PUT("/:id", adminOnly, ctrl.UpdateProduct)
			product.DELETE("/:id", adminOnly, ctrl.DeleteProduct)
		}

		order := api.Group("/order")
		{
			order.POST("/new", ctrl.NewOrder)
			order.GET("/my", ctrl.MyOrders)
			order.GET("/all", adminOnly, ctrl.AllOrders)
			order.GET("/:id", ctrl.GetOrder)
			order.PUT("/:id", adminOnly, ctrl.ProcessOrder)
			order.DELETE("/:id", adminOnly, ctrl.DeleteOrder)
		}

		coupon := api.Group("/coupon")
		{
			coupon.POST("/new", adminOnly, ctrl.NewCoupon)
			coupon.GET("/discount", ctrl.ApplyDiscount)
			coupon.GET("/all", adminOnly, ctrl.AllCoupons)
			coupon.DELETE("/:id", adminOnly, ctrl.DeleteCoupon)
		}

		payment := api.Group("/payment")
		{
			payment.POST("/create", ctrl.CreatePaymentIntent)
		}

		dashboard := api.Group("/dashboard", adminOnly)
		{
			dashboard.GET("/stats", ctrl.GetDashboardStats)
			dashboard.GET("/pie", ctrl.GetPieCharts)
			dashboard.GET("/bar", ctrl.GetBarCharts)
			dashboard.GET("/line", ctrl.GetLineCharts)
		}
	}

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "message": "Endpoint not found"})
	})
	return r
}
