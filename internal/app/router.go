package app

import (
	"codecoach_backend/docs"
	"codecoach_backend/internal/config"
	"codecoach_backend/internal/middleware"
	"codecoach_backend/internal/model"
	"codecoach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/auth/register", c.auth.Register)
		public.POST("/auth/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg))
	{
		authGroup.GET("/auth/me", c.auth.GetProfile)

		// 题库
		authGroup.GET("/problems", c.problem.ListProblems)
		authGroup.POST("/problems", middleware.RoleMiddleware(model.Admin), c.problem.CreateProblem)

		// 练习记录
		authGroup.POST("/attempts", c.attempt.RecordAttempt)
		authGroup.GET("/attempts", c.attempt.ListAttempts)

		// 学习者分析
		authGroup.GET("/analytics/weaknesses", c.analytics.GetWeaknesses)
		authGroup.GET("/analytics/errors", c.analytics.GetErrorPatterns)
		authGroup.GET("/analytics/dashboard", c.analytics.GetDashboard)

		// 推荐
		authGroup.POST("/recommendations/generate", c.recommendation.Generate)
		authGroup.GET("/recommendations", c.recommendation.List)
		authGroup.POST("/recommendations/:id/complete", c.recommendation.Complete)

		// 间隔复习
		authGroup.GET("/revisions/due", c.revision.GetDue)
		authGroup.POST("/revisions/:problemId/complete", c.revision.Complete)
	}
}
