package routes

import (
	"net/http"
	"time"

	"lojinha/handlers"
	"lojinha/middleware"
	"lojinha/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers user CRUD and auth endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/users", hb.Users.ListUsers)
		api.GET("/users/:id", hb.Users.GetUser)
		api.POST("/users", hb.Users.CreateUser)
		api.PUT("/users/:id", hb.Users.UpdateUser)
		api.DELETE("/users/:id", hb.Users.DeleteUser)

		api.POST("/login", hb.Users.Login)

		// Protected routes (Require Authentication)
		private := api.Group("")
		private.Use(middleware.JWTAuthMiddleware(hb.TokenCache))
		private.POST("/logout/:id", hb.Users.Logout)
	}
}

// RegisterProductRoutes registers catalog and favorite endpoints.
func RegisterProductRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/products", hb.Products.ListProducts)
		api.GET("/products/:id", hb.Products.GetProduct)
		api.POST("/products", hb.Products.CreateProduct)
		api.PUT("/products/:id", hb.Products.UpdateProduct)
		api.DELETE("/products/:id", hb.Products.DeleteProduct)

		// Favorites require an authenticated user.
		private := api.Group("")
		private.Use(middleware.JWTAuthMiddleware(hb.TokenCache))
		private.POST("/products/:id/favorite", hb.Favorites.AddFavorite)
		private.DELETE("/products/:id/favorite", hb.Favorites.RemoveFavorite)
		private.GET("/favorites", hb.Favorites.ListFavorites)
	}
}

// RegisterAppointmentRoutes registers the booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.POST("/appointments", hb.Appointments.CreateAppointment)
		api.GET("/appointments", hb.Appointments.ListAppointments)
	}
}

// RegisterFileRoutes registers file listing and upload endpoints.
func RegisterFileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/files", hb.Uploads.ListFiles)
		api.GET("/user/:userId/files", hb.Uploads.ListUserFiles)

		private := api.Group("")
		private.Use(middleware.JWTAuthMiddleware(hb.TokenCache))
		private.POST("/uploadFile", hb.Uploads.UploadFile)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "health": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterUserRoutes(r, hb)
	RegisterProductRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterFileRoutes(r, hb)
}
