package routes

import (
	"salonbook-backend/config"
	"salonbook-backend/controllers"
	"salonbook-backend/services"
	"salonbook-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func SetupRouter(reminderService *services.ReminderService) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000", "http://localhost:5173"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: true,
	}))

	r.Use(config.RequestID())
	r.Use(config.PerformanceLogger())

	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", controllers.Me)
	}

	// The catalog is browsable without an account
	r.GET("/api/services", controllers.GetServices)
	r.GET("/api/services/:id", controllers.GetService)

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Appointment routes
		appointments := api.Group("/appointments")
		{
			appointments.POST("", controllers.CreateAppointment)
			appointments.GET("", controllers.GetAppointments)
			appointments.PUT("/:id", controllers.UpdateAppointment)
			appointments.POST("/:id/cancel", controllers.CancelAppointment)
			appointments.POST("/:id/merge", controllers.MergeAppointment)
		}

		// Profile routes
		profile := api.Group("/profile")
		{
			profile.GET("", controllers.GetProfile)
			profile.PUT("", controllers.UpdateProfile)
		}

		// Admin routes
		admin := api.Group("/admin")
		admin.Use(utils.RequireRole("admin"))
		{
			admin.GET("/stats", controllers.GetAdminStats)
			admin.GET("/appointments", controllers.GetAppointments)
			admin.PATCH("/appointments/:id/status", controllers.ChangeAppointmentStatus)
			admin.GET("/customers", controllers.GetCustomers)
			admin.GET("/customers/:id", controllers.GetCustomer)

			// Catalog management
			admin.POST("/services", controllers.CreateService)
			admin.PUT("/services/:id", controllers.UpdateService)
			admin.DELETE("/services/:id", controllers.DeleteService)

			reminderController := controllers.ReminderController{Service: reminderService}
			admin.GET("/reminders", reminderController.GetReminderLogs)
			admin.POST("/reminders/run", reminderController.RunReminders)
		}
	}

	return r
}
