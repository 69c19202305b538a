package routes

import (
	"time"

	"marketly/handlers"
	"marketly/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers signup, login and logout.
func RegisterAuthRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api.POST("/signup", hb.Users.SignupHandler)
	api.POST("/login", hb.Users.LoginHandler)
	api.POST("/logout", auth, hb.Users.LogoutHandler)
}

// RegisterCatalogRoutes registers listings, search, categories and service management.
func RegisterCatalogRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	api.GET("/search", hb.Catalog.SearchServicesHandler)
	api.GET("/categories", hb.Catalog.ListCategoriesHandler)
	api.GET("/categories/:id/services", hb.Catalog.ListCategoryServicesHandler)
	api.GET("/service-types", hb.Catalog.ListServiceTypesHandler)

	services := api.Group("/services")
	{
		services.GET("", hb.Catalog.ListServicesHandler)
		services.GET("/:id", hb.Catalog.GetServiceHandler)
		services.GET("/:id/reviews", hb.Reviews.ListReviewsHandler)

		// Protected routes (Require Authentication)
		protected := services.Group("")
		protected.Use(auth)
		protected.POST("", hb.Catalog.CreateServiceHandler)
		protected.PUT("/:id", hb.Catalog.UpdateServiceHandler)
		protected.DELETE("/:id", hb.Catalog.DeleteServiceHandler)
		protected.POST("/:id/images", hb.Catalog.UploadServiceImageHandler)
		protected.POST("/:id/reviews", hb.Reviews.CreateReviewHandler)
	}
}

// RegisterUserRoutes registers the caller's profile, products, favorites and history.
func RegisterUserRoutes(api *gin.RouterGroup, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	user := api.Group("")
	user.Use(auth)
	{
		user.GET("/profile", hb.Users.GetProfileHandler)
		user.PUT("/profile", hb.Users.UpdateProfileHandler)

		user.GET("/products", hb.Users.ListProductsHandler)
		user.POST("/products", hb.Users.AddProductHandler)
		user.PUT("/products/:id", hb.Users.UpdateProductHandler)
		user.DELETE("/products/:id", hb.Users.DeleteProductHandler)

		user.GET("/favorites", hb.Users.ListFavoritesHandler)
		user.POST("/favorites/:serviceId", hb.Users.AddFavoriteHandler)
		user.DELETE("/favorites/:serviceId", hb.Users.RemoveFavoriteHandler)

		user.GET("/history", hb.Users.ListHistoryHandler)
		user.POST("/history", hb.Users.AddHistoryHandler)
	}
}

// RegisterHealthRoutes registers the health check and Prometheus endpoints.
func RegisterHealthRoutes(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
	r.GET("/metrics", middleware.MetricsHandler())
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, auth gin.HandlerFunc) {
	r.Use(cors.New(cors.Config{
		AllowAllOrigins: true,
		AllowMethods:    []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:    []string{"Origin", "Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:   []string{"Content-Length", middleware.RequestIDHeader},
		MaxAge:          12 * time.Hour,
	}))

	api := r.Group("/api")
	RegisterAuthRoutes(api, hb, auth)
	RegisterCatalogRoutes(api, hb, auth)
	RegisterUserRoutes(api, hb, auth)
	RegisterHealthRoutes(r)
}
