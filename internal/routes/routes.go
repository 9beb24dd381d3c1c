package routes

import (
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/handlers/product"
	"velora_back_end/internal/handlers/user"
	"velora_back_end/internal/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	api := r.Group("/api", middleware.APIRateLimit())

	// ================== UTILISATEURS ==================
	userGroup := api.Group("/user")
	{
		userGroup.POST("/register", middleware.RegisterRateLimit(), user.Register)
		userGroup.POST("/login", middleware.LoginRateLimit(), user.Login)
		userGroup.POST("/admin-login", middleware.LoginRateLimit(), user.AdminLogin)
		userGroup.GET("/refresh", user.RefreshToken)
		userGroup.GET("/logout", user.Logout)
		userGroup.POST("/forgot-password-token", middleware.ForgotPasswordRateLimit(), user.ForgotPasswordToken)
		userGroup.PUT("/reset-password/:token", user.ResetPassword)

		auth := userGroup.Group("", middleware.AuthRequired())
		{
			auth.PUT("/password", user.UpdatePassword)
			auth.PUT("/edit-user", user.UpdateUser)
			auth.PUT("/save-address", user.SaveAddress)
			auth.GET("/wishlists", user.GetWishlist)

			auth.POST("/cart", user.UserCart)
			auth.GET("/cart", user.GetUserCart)
			auth.DELETE("/empty-cart", user.EmptyCart)
			auth.POST("/cart/applycoupon", user.ApplyCoupon)
			auth.POST("/cart/cash-order", user.CreateCashOrder)
			auth.GET("/get-orders", user.GetMyOrders)

			admin := auth.Group("", middleware.RequireAdmin)
			{
				admin.GET("/all-users", user.GetAllUsers)
				admin.GET("/get-user/:id", user.GetUser)
				admin.DELETE("/delete-user/:id", user.DeleteUser)
				admin.PUT("/block-user/:id", user.BlockUser)
				admin.PUT("/unblock-user/:id", user.UnblockUser)

				admin.GET("/all-orders", user.GetAllOrders)
				admin.GET("/order/:id", user.GetOrdersByUserID)
				admin.PUT("/order/update-order/:id", user.UpdateOrderStatus)
			}
		}
	}

	// ================== CATALOGUE ==================
	productGroup := api.Group("/product")
	{
		productGroup.GET("", product.GetAllProducts)
		productGroup.GET("/search", product.SearchProducts)
		productGroup.GET("/get/:id", product.GetProduct)

		authProduct := productGroup.Group("", middleware.AuthRequired())
		{
			authProduct.PUT("/wishlist", product.AddToWishlist)
			authProduct.PUT("/rating", product.Rating)

			adminProduct := authProduct.Group("", middleware.RequireAdmin)
			{
				adminProduct.POST("", product.CreateProduct)
				adminProduct.PUT("/update/:id", product.UpdateProduct)
				adminProduct.DELETE("/delete/:id", product.DeleteProduct)
			}
		}
	}

	// ================== COUPONS ==================
	couponGroup := api.Group("/coupon", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		couponGroup.POST("", handlers.CreateCoupon)
		couponGroup.GET("", handlers.GetAllCoupons)
		couponGroup.PUT("/:id", handlers.UpdateCoupon)
		couponGroup.DELETE("/:id", handlers.DeleteCoupon)
	}

	// ================== UPLOAD ==================
	uploadGroup := api.Group("/upload", middleware.AuthRequired(), middleware.RequireAdmin)
	{
		uploadGroup.POST("", handlers.UploadImages)
		uploadGroup.DELETE("/:id", handlers.DeleteImage)
	}
}
