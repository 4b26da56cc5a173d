package routes

import (
	"net/http"
	"time"

	"medcrm/handlers"
	"medcrm/middleware"
	"medcrm/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterAuthRoutes registers dashboard account endpoints.
func RegisterAuthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/auth")
	{
		api.POST("/register", hb.RegisterAccountHandler)
		api.POST("/sign-in", hb.SignInHandler)

		// Protected routes (require authentication)
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("/sign-out", hb.SignOutHandler)
		api.GET("/me", hb.GetProfileHandler)
		api.PUT("/me", hb.UpdateProfileHandler)
		api.PUT("/me/password", hb.ChangePasswordHandler)
	}
}

// RegisterDoctorRoutes registers roster and availability endpoints.
func RegisterDoctorRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/doctors")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))

		api.POST("", hb.CreateDoctorHandler)
		api.GET("", hb.ListDoctorsHandler)
		api.GET("/:id", hb.GetDoctorByIDHandler)
		api.PUT("/:id", hb.UpdateDoctorHandler)
		api.DELETE("/:id", hb.DeleteDoctorHandler)
		api.GET("/:id/free-slots", hb.FreeSlotsHandler)
		api.POST("/:id/photo", hb.UploadDoctorPhoto)

		// Weekly availability
		api.PUT("/:id/availability/:day", hb.ToggleDayHandler)
		api.POST("/:id/availability/:day/slots", hb.AddSlotHandler)
		api.PUT("/:id/availability/:day/slots/:slotId", hb.UpdateSlotHandler)
		api.DELETE("/:id/availability/:day/slots/:slotId", hb.RemoveSlotHandler)

		// Date overrides
		api.POST("/:id/overrides", hb.AddOverrideHandler)
		api.PUT("/:id/overrides/:overrideId", hb.UpdateOverrideHandler)
		api.DELETE("/:id/overrides/:overrideId", hb.RemoveOverrideHandler)
	}
}

// RegisterAgentRoutes registers voice-agent configuration endpoints.
func RegisterAgentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/agents")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))

		api.GET("/script-variables", hb.ListScriptVariablesHandler)
		api.POST("", hb.CreateAgentHandler)
		api.GET("", hb.ListAgentsHandler)
		api.GET("/:id", hb.GetAgentByIDHandler)
		api.PUT("/:id", hb.UpdateAgentHandler)
		api.DELETE("/:id", hb.DeleteAgentHandler)
		api.POST("/:id/script/insert-variable", hb.InsertScriptVariableHandler)
		api.POST("/:id/script/preview", hb.PreviewScriptHandler)
	}
}

// RegisterCallLogRoutes registers call history endpoints. Ingestion stays
// open for the telephony webhook; everything else requires authentication.
func RegisterCallLogRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/call-logs")
	{
		api.POST("", hb.IngestCallLogHandler)

		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.GET("", hb.ListCallLogsHandler)
		api.GET("/:id", hb.GetCallLogByIDHandler)
		api.DELETE("/:id", hb.DeleteCallLogHandler)
	}
}

// RegisterAppointmentRoutes registers booking endpoints.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.Use(middleware.JWTAuthMiddleware(hb.AccountRepo))
		api.POST("", hb.CreateAppointmentHandler)
		api.GET("", hb.ListAppointmentsHandler)
		api.GET("/:id", hb.GetAppointmentByIDHandler)
		api.PUT("/:id/status", hb.UpdateAppointmentStatusHandler)
		api.PUT("/:id/schedule", hb.RescheduleAppointmentHandler)
		api.DELETE("/:id", hb.DeleteAppointmentHandler)
	}
}

// RegisterAdminRoutes sets up endpoints for admin operations.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	adminGroup := r.Group("/api/admin")
	{
		adminGroup.Use(middleware.JWTAuthMiddleware(hb.AccountRepo), middleware.AdminOnlyMiddleware())
		adminGroup.DELETE("/accounts/:id", hb.DeleteAccountHandler)
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

	RegisterAuthRoutes(r, hb)
	RegisterDoctorRoutes(r, hb)
	RegisterAgentRoutes(r, hb)
	RegisterCallLogRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
	RegisterHealthRoute(r)
}
