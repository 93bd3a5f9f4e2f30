package app

import (
	"habit_streak_backend/docs"
	"habit_streak_backend/internal/config"
	"habit_streak_backend/internal/middleware"
	"habit_streak_backend/internal/model"
	"habit_streak_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/profile", c.user.UpdateProfile)
		authGroup.POST("/profile/avatar", c.user.UploadAvatar)

		authGroup.GET("/streak", c.streak.GetStatus)
		authGroup.POST("/streak/reset", c.streak.Reset)

		authGroup.GET("/journal", c.journal.Month)
		authGroup.PUT("/journal", c.journal.Save)
		authGroup.GET("/journal/recent", c.journal.Recent)

		content := authGroup.Group("/content")
		{
			content.GET("/articles", c.content.Articles)
			content.GET("/recommended", c.content.Recommended)
			content.GET("/tip", c.content.Tip)
			content.GET("/blog", c.content.BlogPosts)
		}

		authGroup.GET("/dashboard", c.dashboard.Overview)

		chat := authGroup.Group("/chat")
		{
			chat.POST("/room", c.chat.JoinRoom)
			chat.GET("/rooms/:id/messages", c.chat.History)
			chat.POST("/rooms/:id/messages", c.chat.Send)
			chat.GET("/ws", c.chat.HandleWS)
		}
	}

	admin := router.Group("/api/admin")
	admin.Use(middleware.AuthMiddleware(cfg), middleware.RoleMiddleware(model.Admin))
	{
		admin.GET("/users", c.admin.ListUsers)
		admin.PUT("/users/:id/ban", c.admin.SetBanned)
		admin.PUT("/users/:id/mute", c.admin.SetMuted)
		admin.GET("/users/:id/resets", c.admin.ResetHistory)
		admin.PUT("/messages/:id/hide", c.admin.HideMessage)
		admin.GET("/rooms/:id/messages", c.admin.RoomHistory)
	}
}
