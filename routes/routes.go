package routes

import (
	"time"

	"clinicdesk/handlers"
	"clinicdesk/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes registers the conversational endpoint.
func RegisterChatRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/chat")
	{
		api.POST("", hb.HandleChat)
	}
}

// RegisterClinicRoutes registers clinic directory endpoints. Reads are
// public; creation and updates require the admin token.
func RegisterClinicRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/clinics")
	{
		api.GET("", hb.ListClinicsHandler)
		api.GET("/:id", hb.GetClinicHandler)
		api.GET("/:id/services", hb.GetClinicServicesHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", hb.CreateClinicHandler)
		protected.PUT("/:id", hb.UpdateClinicHandler)
		protected.DELETE("/:id", hb.DeleteClinicHandler)
	}
}

// RegisterAppointmentRoutes sets up the endpoints for the scheduling engine.
func RegisterAppointmentRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/appointments")
	{
		api.GET("/slots", hb.GetSlotsHandler)
		api.POST("/book", hb.BookAppointmentHandler)
		api.GET("/patient/:phone", hb.GetPatientAppointmentsHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", handlers.HealthHandler)
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

	RegisterChatRoutes(r, hb)
	RegisterClinicRoutes(r, hb)
	RegisterAppointmentRoutes(r, hb)
	RegisterHealthRoute(r)
}
