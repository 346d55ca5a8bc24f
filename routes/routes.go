package routes

import (
	"net/http"
	"time"

	"beautymatch/handlers"
	"beautymatch/middleware"
	"beautymatch/models"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers identity endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.Auth.RegisterHandler)
		api.POST("/login", hb.Auth.LoginHandler)

		// Protected routes (Require Authentication)
		protected := api.Group("")
		protected.Use(middleware.JWTAuthMiddleware())
		protected.POST("/logout", hb.Auth.LogoutHandler)
		protected.PUT("/fcm-token", hb.Auth.UpdateFCMTokenHandler)
	}
}

// RegisterCatalogRoutes registers the client browse endpoints.
func RegisterCatalogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/catalog")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.Use(middleware.RequireRole(models.RoleClient))
		api.POST("/session", hb.Catalog.StartSessionHandler)
		api.PUT("/filter", hb.Catalog.ApplyFilterHandler)
		api.POST("/advance", hb.Catalog.AdvanceHandler)
		api.POST("/retreat", hb.Catalog.RetreatHandler)
		api.GET("/current", hb.Catalog.CurrentHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("", middleware.RequireRole(models.RoleClient), hb.Booking.CreateBookingHandler)
		api.PATCH("/:id/status", middleware.RequireRole(models.RoleProfessional), hb.Booking.UpdateStatusHandler)
		api.POST("/:id/messages", hb.Booking.SendMessageHandler)
		api.GET("/:id", hb.Booking.GetBookingHandler)
		api.GET("", hb.Booking.ListBookingsHandler)
	}
}

// RegisterNotificationRoutes registers the notification endpoints.
func RegisterNotificationRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/notifications")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("", hb.Notification.ListNotificationsHandler)
		api.POST("/read", hb.Notification.MarkReadHandler)
	}
}

// RegisterOnboardingRoutes registers the professional wizard endpoints.
func RegisterOnboardingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/onboarding")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.Use(middleware.RequireRole(models.RoleProfessional))
		api.GET("/state", hb.Onboarding.GetStateHandler)
		api.PUT("/steps/:step", hb.Onboarding.SubmitStepHandler)
		api.POST("/complete", hb.Onboarding.CompleteHandler)
	}
}

// RegisterProfileRoutes registers profile reads and owner edits.
func RegisterProfileRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/profiles")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.GET("/:id", hb.Profile.GetProfileHandler)
		api.PATCH("/me", middleware.RequireRole(models.RoleProfessional), hb.Profile.UpdateProfileHandler)
	}
}

// RegisterStorageRoutes registers the profile image upload endpoint.
func RegisterStorageRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/storage")
	{
		api.Use(middleware.JWTAuthMiddleware())
		api.POST("/profile-image", hb.Storage.UploadProfileImageHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BeautyMatch"})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	// Setup global middleware (e.g., CORS) here.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	RegisterAuthRoutes(r, hb)
	RegisterCatalogRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterNotificationRoutes(r, hb)
	RegisterOnboardingRoutes(r, hb)
	RegisterProfileRoutes(r, hb)
	RegisterStorageRoutes(r, hb)
	RegisterHealthRoute(r)
}
