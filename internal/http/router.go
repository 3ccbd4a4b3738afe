package http

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/seabasket/seabasket-api/internal/http/handlers"
	"github.com/seabasket/seabasket-api/internal/http/middleware"
)

// NewRouter wires all HTTP routes. Public catalog routes live beside
// the bearer-protected cart, order, review, profile and admin routes.
func NewRouter(
	authHandlers *handlers.AuthHandlers,
	shopHandlers *handlers.ShopHandlers,
	adminHandlers *handlers.AdminHandlers,
	authMW *middleware.AuthMW,
) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:   []string{"Authorization"},
	}))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	auth := router.Group("/auth")
	{
		auth.POST("/sign-up", authHandlers.SignUp)
		auth.POST("/sign-in", authHandlers.SignIn)
		auth.POST("/otp/send", authHandlers.SendOTP)
		auth.POST("/otp/verify", authHandlers.VerifyOTP)
		auth.POST("/forgot-password", authHandlers.ForgotPassword)
		auth.POST("/reset-password/:token", authHandlers.ResetPassword)
		auth.PUT("/profile", authMW.WithJWT(), authHandlers.UpdateProfile)
	}

	shop := router.Group("/shop")
	{
		shop.GET("/products", shopHandlers.ListProducts)
		shop.GET("/products/categories", shopHandlers.Categories)
		shop.GET("/products/trending", shopHandlers.Trending)
		shop.GET("/products/:id", shopHandlers.ProductDetail)

		protected := shop.Group("", authMW.WithJWT())
		{
			protected.POST("/products/:id/review", shopHandlers.PostReview)

			protected.GET("/cart", shopHandlers.GetCart)
			protected.POST("/cart/add-product", shopHandlers.AddToCart)
			protected.DELETE("/cart", shopHandlers.RemoveFromCart)

			protected.POST("/order", shopHandlers.PlaceOrder)
			protected.GET("/order", shopHandlers.ListOrders)
			protected.GET("/order/:id", shopHandlers.OrderDetail)
		}
	}

	admin := router.Group("/admin", authMW.WithJWT())
	{
		admin.POST("/products", adminHandlers.CreateProduct)
		admin.GET("/products", adminHandlers.ListOwnProducts)
		admin.GET("/products/:id", adminHandlers.GetOwnProduct)
		admin.PUT("/products/:id", adminHandlers.UpdateProduct)
		admin.DELETE("/products/:id", adminHandlers.DeleteProduct)
	}

	return router
}
