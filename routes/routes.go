package routes

import (
	"github.com/satoshi256kbyte/goal-mandala-sub000/controllers"
	"github.com/satoshi256kbyte/goal-mandala-sub000/middlewares"
	"github.com/satoshi256kbyte/goal-mandala-sub000/services"

	"github.com/gin-gonic/gin"
)

func SetupRouter(hub *services.RealtimeHub, push *services.PushService, analytics *services.AnalyticsService) *gin.Engine {
	r := gin.Default()

	rc := controllers.NewRealtimeController(hub)
	dc := controllers.NewDeviceController(push)
	ac := controllers.NewAnalyticsController(analytics)

	// Public auth routes
	auth := r.Group("/auth")
	{
		auth.POST("/register", controllers.Register)
		auth.POST("/login", controllers.Login)
		auth.POST("/forgot-password", controllers.ForgotPassword)
		auth.POST("/reset-password", controllers.ResetPassword)
	}

	// Protected user routes
	user := r.Group("/user")
	user.Use(middlewares.AuthMiddleware())
	{
		user.GET("/profile", controllers.GetProfile)
		user.PUT("/profile", controllers.UpdateProfile)
		user.DELETE("/account", controllers.DeleteAccount)
		user.POST("/devices", dc.Register)
		user.POST("/notifications/toggle", controllers.ToggleNotifications)
	}

	// Mandala hierarchy
	api := r.Group("/api")
	api.Use(middlewares.AuthMiddleware())
	{
		api.POST("/goals", controllers.CreateGoal)
		api.GET("/goals", controllers.ListGoals)
		api.GET("/goals/:id", controllers.GetGoal)
		api.PUT("/goals/:id", controllers.UpdateGoal)
		api.DELETE("/goals/:id", controllers.DeleteGoal)
		api.POST("/goals/:id/sub-goals", controllers.CreateSubGoal)
		api.GET("/goals/:id/sub-goals", controllers.ListSubGoals)
		api.POST("/goals/:id/sub-goals/reorder", controllers.ReorderSubGoals)

		api.PUT("/sub-goals/:id", controllers.UpdateSubGoal)
		api.DELETE("/sub-goals/:id", controllers.DeleteSubGoal)
		api.POST("/sub-goals/:id/actions", controllers.CreateAction)
		api.GET("/sub-goals/:id/actions", controllers.ListActions)
		api.POST("/sub-goals/:id/actions/reorder", controllers.ReorderActions)

		api.PUT("/actions/:id", controllers.UpdateAction)
		api.DELETE("/actions/:id", controllers.DeleteAction)
		api.POST("/actions/:id/tasks", controllers.CreateTask)
		api.GET("/actions/:id/tasks", controllers.ListTasks)

		api.PUT("/tasks/:id", controllers.UpdateTask)
		api.PUT("/tasks/:id/status", controllers.UpdateTaskStatus)
		api.DELETE("/tasks/:id", controllers.DeleteTask)
		api.POST("/tasks/:id/reminders", controllers.CreateReminder)
		api.GET("/tasks/:id/reminders", controllers.ListReminders)
		api.POST("/tasks/:id/reflections", controllers.CreateReflection)
		api.GET("/tasks/:id/reflections", controllers.ListReflections)

		api.PUT("/reminders/:id", controllers.UpdateReminder)
		api.POST("/reminders/:id/cancel", controllers.CancelReminder)

		api.PUT("/reflections/:id", controllers.UpdateReflection)
		api.DELETE("/reflections/:id", controllers.DeleteReflection)

		api.GET("/analytics/summary", ac.GetAnalyticsSummary)
		api.GET("/analytics/weekly", ac.GetWeeklyOverview)
	}

	// Realtime events over websocket
	ws := r.Group("/ws")
	ws.Use(middlewares.AuthMiddleware())
	{
		ws.GET("/events", rc.EventsWS)
	}

	return r
}
