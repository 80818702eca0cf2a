package routes

import (
	"MedzenGo/controllers"
	"MedzenGo/middleware"
	"MedzenGo/services"
	"MedzenGo/storage"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, store storage.Store, assistant *services.Assistant) {
	deviceController := controllers.DeviceController{}
	healthController := controllers.NewHealthController(store)
	chatController := controllers.NewChatController(store, assistant)
	medicationController := controllers.NewMedicationController(store)
	symptomController := controllers.NewSymptomController(store)

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/device", deviceController.Register)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 追踪项相关接口
		private.GET("/trackers", healthController.GetTrackers)
		private.PUT("/trackers/:key/value", healthController.SetTrackerValue)
		private.PUT("/trackers/:key/target", healthController.SetTrackerTarget)

		// 目标相关接口
		private.GET("/goals", healthController.GetGoals)
		private.GET("/goals/today", healthController.GetTodayGoals)
		private.POST("/goals", healthController.CreateGoal)
		private.PUT("/goals/:id", healthController.UpdateGoal)
		private.DELETE("/goals/:id", healthController.DeleteGoal)
		private.GET("/custom-goals", healthController.GetCustomGoals)
		private.PUT("/custom-goals", healthController.SaveCustomGoal)
		private.DELETE("/custom-goals/:label", healthController.DeleteCustomGoal)

		// 进度日志相关接口
		private.GET("/progress", healthController.GetProgressLog)
		private.POST("/progress", healthController.LogProgress)
		private.GET("/progress/:date/completed", healthController.GetDayCompleted)

		// Chat 相关接口
		private.GET("/chats", chatController.GetChats)
		private.POST("/chats", chatController.CreateChat)
		private.GET("/chats/active", chatController.GetActiveChat)
		private.PUT("/chats/active", chatController.SetActiveChat)
		private.POST("/chats/:id/messages", chatController.SendMessage)
		private.DELETE("/chats/:id", chatController.DeleteChat)
		private.GET("/chats/:id/export", chatController.ExportChat)

		// 用药/症状相关接口
		private.GET("/medications", medicationController.GetMedications)
		private.POST("/medications", medicationController.CreateMedication)
		private.PUT("/medications/:id", medicationController.UpdateMedication)
		private.DELETE("/medications/:id", medicationController.DeleteMedication)
		private.GET("/symptoms", symptomController.GetSymptoms)
		private.POST("/symptoms", symptomController.CreateSymptom)
		private.PUT("/symptoms/:id", symptomController.UpdateSymptom)
		private.DELETE("/symptoms/:id", symptomController.DeleteSymptom)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
