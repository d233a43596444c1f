package app

import (
	"lingua_quest_backend/docs"
	"lingua_quest_backend/internal/config"
	"lingua_quest_backend/internal/middleware"

	"lingua_quest_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// 公共路由(无需登录)
	public := router.Group("/api")
	{
		public.GET("/health", func(ctx *gin.Context) {
			sqlDB, err := a.DB.DB()
			if err != nil || sqlDB.Ping() != nil {
				ctx.JSON(503, gin.H{"status": "degraded"})
				return
			}
			ctx.JSON(200, gin.H{"status": "ok"})
		})
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// 需要授权的路由
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/me", c.auth.Me)

		authGroup.GET("/users/profile", c.user.Profile)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)
		authGroup.GET("/users/sessions", c.user.SessionHistory)

		game := authGroup.Group("/game")
		{
			game.POST("/sessions", c.game.StartSession)
			game.GET("/questions", c.game.Questions)
			game.POST("/sessions/:id/answers", c.game.SubmitAnswer)
			game.POST("/sessions/:id/finish", c.game.FinishSession)
			game.GET("/sessions/:id/results", c.game.Results)

			game.GET("/sessions/:id/phase2", c.phase2.Progress)
			game.POST("/sessions/:id/phase2/steps/:stepId/items", c.phase2.SubmitActionItem)
			game.GET("/sessions/:id/phase2/steps/:stepId/remedial", c.phase2.RemedialActivities)
			game.POST("/sessions/:id/phase2/steps/:stepId/remedial", c.phase2.SubmitRemedial)
		}

		authGroup.GET("/reviews", c.review.AllRecords)
		authGroup.GET("/reviews/due", c.review.DueReviews)
		authGroup.GET("/reviews/recommendation", c.review.Recommendation)
		authGroup.POST("/reviews/outcomes", c.review.RecordOutcome)

		authGroup.GET("/achievements", c.achievement.MyAchievements)
		authGroup.GET("/leaderboard", c.achievement.Leaderboard)

		authGroup.POST("/uploads/recordings", c.upload.UploadRecording)
		authGroup.POST("/uploads/avatars", c.upload.UploadAvatar)
		authGroup.POST("/uploads/assets", middleware.RoleMiddleware("admin"), c.upload.UploadAsset)
	}
}
