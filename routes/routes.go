package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/hyangkk/timecounter/config"
	"github.com/hyangkk/timecounter/controllers"
	"github.com/hyangkk/timecounter/middleware"
	"github.com/hyangkk/timecounter/services"
)

func RegisterRoutes(r *gin.Engine, conf config.Config, stopwatchService *services.StopwatchService) {
	authController := controllers.AuthController{}
	recordController := controllers.RecordController{Loc: conf.Location()}
	summaryController := controllers.SummaryController{Loc: conf.Location()}
	stopwatchController := controllers.NewStopwatchController(stopwatchService)
	userController := controllers.UserController{BaseURL: conf.AppBaseURL}

	// 公开路由（无需认证）
	public := r.Group("/api/v1")
	{
		public.POST("/auth/anonymous", authController.AnonymousLogin)
		public.POST("/auth/oidc", authController.OIDCLogin)
		public.POST("/auth/test-user", authController.CreateTestUser)
	}

	// 需要认证的路由
	private := r.Group("/api/v1")
	private.Use(middleware.AuthMiddleware()) // 应用认证中间件
	{
		// 记录相关接口
		private.GET("/records", recordController.ListRecords)
		private.POST("/records", recordController.CreateManualRecord)
		private.PATCH("/records/:id", recordController.UpdateDuration)
		private.DELETE("/records/:id", recordController.DeleteRecord)

		// 秒表相关接口
		private.POST("/stopwatch/start", stopwatchController.Start)
		private.POST("/stopwatch/stop", stopwatchController.Stop)
		private.GET("/stopwatch", stopwatchController.Status)

		// 按天汇总接口
		private.GET("/summary", summaryController.GetSummary)
		private.GET("/summary/:date", summaryController.GetDaySummary)

		// 用户接口
		private.GET("/user", userController.GetUser)
		private.GET("/user/share-link", userController.GetShareLink)
	}

	// 内部路由组（仅限服务器内部调用）
	internal := r.Group("/internal")
	internal.Use(middleware.InternalAuthMiddleware())
	{
		internal.GET("/cleanup", userController.CleanupAnonymousUsers)
	}

	// 测试路由
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "pong"})
	})
}
