package routes

import (
	"github.com/mahi-manish/pill-time/controllers"
	"github.com/mahi-manish/pill-time/middlewares"

	"github.com/gin-gonic/gin"
)

func SetupRouter(alertCtl *controllers.AlertController, rtCtl *controllers.RealtimeController) *gin.Engine {
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
	}

	// Scheduler-facing trigger; the caretaker dashboard's "send reminder
	// now" button posts here too.
	alerts := r.Group("/alerts")
	{
		alerts.POST("/check-missed", alertCtl.CheckMissedDoses)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)

		user.GET("/medications", controllers.ListMedications)
		user.POST("/medications", controllers.CreateMedication)
		user.PUT("/medications/:id", controllers.UpdateMedication)
		user.DELETE("/medications/:id", controllers.DeleteMedication)
		user.PUT("/medications/:id/log", controllers.MarkDose)

		user.GET("/logs", controllers.ListLogs)
		user.GET("/stats", controllers.GetDashboardStats)

		user.GET("/alerts", controllers.ListAlerts)
		user.GET("/alerts/ws", rtCtl.AlertsWS)
	}

	return r
}
