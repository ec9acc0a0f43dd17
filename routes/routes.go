package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/rkritzar39/calebsportfolio-sub000/handlers"
	"github.com/rkritzar39/calebsportfolio-sub000/middleware"
	"github.com/rkritzar39/calebsportfolio-sub000/utils"
)

// RegisterPublicRoutes registers the visitor-facing endpoints.
func RegisterPublicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api")
	{
		api.GET("/status", hb.Status.GetStatusHandler)
		api.GET("/hours", hb.Status.GetHoursHandler)
		api.GET("/shoutouts", hb.Content.ListShoutoutsHandler)
		api.GET("/links", hb.Content.ListLinksHandler)
		api.GET("/profile", hb.Content.GetProfileHandler)
		api.GET("/legislation", hb.Content.ListLegislationHandler)
		api.GET("/storage/url/:id", hb.Storage.GetDownloadURLHandler)
		api.POST("/chat", hb.Chat.CompleteHandler)
	}
}

// RegisterAdminRoutes registers the authenticated admin endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	admin := r.Group("/api/admin")
	{
		admin.Use(middleware.AdminAuthMiddleware())

		admin.GET("/hours", hb.Schedule.GetBusinessConfigHandler)
		admin.PUT("/hours", hb.Schedule.UpdateBusinessConfigHandler)
		admin.PUT("/hours/override", hb.Schedule.SetOverrideHandler)

		admin.POST("/holidays", hb.Schedule.AddHolidayHandler)
		admin.PUT("/holidays/:id", hb.Schedule.UpdateHolidayHandler)
		admin.DELETE("/holidays/:id", hb.Schedule.DeleteHolidayHandler)

		admin.POST("/temporary", hb.Schedule.AddTemporaryHandler)
		admin.PUT("/temporary/:id", hb.Schedule.UpdateTemporaryHandler)
		admin.DELETE("/temporary/:id", hb.Schedule.DeleteTemporaryHandler)

		admin.POST("/shoutouts", hb.Content.CreateShoutoutHandler)
		admin.PUT("/shoutouts/:id", hb.Content.UpdateShoutoutHandler)
		admin.DELETE("/shoutouts/:id", hb.Content.DeleteShoutoutHandler)

		admin.POST("/links", hb.Content.CreateLinkHandler)
		admin.PUT("/links/:id", hb.Content.UpdateLinkHandler)
		admin.DELETE("/links/:id", hb.Content.DeleteLinkHandler)

		admin.PUT("/profile", hb.Content.SaveProfileHandler)

		admin.POST("/legislation", hb.Content.CreateLegislationHandler)
		admin.PUT("/legislation/:id", hb.Content.UpdateLegislationHandler)
		admin.DELETE("/legislation/:id", hb.Content.DeleteLegislationHandler)

		admin.GET("/settings", hb.Settings.GetSettingsHandler)
		admin.PUT("/settings", hb.Settings.SaveSettingsHandler)

		admin.POST("/storage/:bucket", hb.Storage.UploadFileHandler)
		admin.DELETE("/storage/:id", hb.Storage.DeleteFileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": utils.GetHealthStatus()})
	})
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterHealthRoute(r)
	RegisterPublicRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
