// File: routes/routes.go
package routes

import (
	"net/http"
	"time"

	"letslink/handlers"
	"letslink/middleware"
	"letslink/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterUserRoutes registers account endpoints.
func RegisterUserRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/users")
	{
		api.POST("/register", hb.RegisterHandler)
		api.POST("/login", hb.SignInHandler)

		// Protected routes (Require Authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/logout", hb.SignOutHandler)
		api.GET("/me", hb.GetMeHandler)
		api.PATCH("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.UpdatePasswordHandler)
		api.DELETE("/me", hb.DeleteUserHandler)
		api.POST("/me/avatar", hb.UploadAvatarHandler)
	}
}

// RegisterGroupRoutes registers group, invite and plan endpoints.
func RegisterGroupRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/groups")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("", hb.CreateGroupHandler)
		api.GET("", hb.ListGroupsHandler)
		api.GET("/:groupID", hb.GetGroupHandler)
		api.DELETE("/:groupID/membership", hb.LeaveGroupHandler)
		api.POST("/:groupID/invites", hb.CreateInviteHandler)

		// Plans
		api.POST("/:groupID/plans", hb.CreatePlanHandler)
		api.GET("/:groupID/plans", hb.ListPlansHandler)
		api.GET("/:groupID/plans/:planID", hb.GetPlanHandler)
		api.DELETE("/:groupID/plans/:planID", hb.DeletePlanHandler)

		// Availability
		api.POST("/:groupID/plans/:planID/availability", hb.SubmitAvailabilityHandler)
		api.GET("/:groupID/plans/:planID/availability/me", hb.GetMyRecordsHandler)
		api.GET("/:groupID/plans/:planID/availability/chart", hb.GetChartHandler)
		api.GET("/:groupID/plans/:planID/availability/timeline", hb.GetTimelineHandler)
	}
}

// RegisterInviteRoutes registers invite redemption.
func RegisterInviteRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/invites")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.POST("/:token/join", hb.JoinByInviteHandler)
	}
}

// RegisterAvailabilityRoutes registers record-level edit endpoints. Records
// are addressed directly by id; ownership is enforced in the service.
func RegisterAvailabilityRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/availability")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.PUT("/:recordID", hb.UpdateRecordHandler)
		api.DELETE("/:recordID", hb.DeleteRecordHandler)
	}
}

// RegisterPresetRoutes registers per-user preset management.
func RegisterPresetRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/presets")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.UserRepo))
		api.GET("", hb.ListPresetsHandler)
		api.POST("", hb.CreatePresetHandler)
		api.PUT("/:presetID", hb.UpdatePresetHandler)
		api.DELETE("/:presetID", hb.DeletePresetHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"message": "Hi, I'm Lets Link",
			"deps":    utils.GetHealthStatus(),
		})
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

	RegisterUserRoutes(r, hb)
	RegisterGroupRoutes(r, hb)
	RegisterInviteRoutes(r, hb)
	RegisterAvailabilityRoutes(r, hb)
	RegisterPresetRoutes(r, hb)
	RegisterHealthRoute(r)
}
