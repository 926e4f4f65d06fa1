package server

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"eventlista/config"
	"eventlista/internal/handlers"
	"eventlista/internal/logger"
	"eventlista/internal/middleware"
	"eventlista/internal/models"
	"eventlista/internal/token"
)

func Start() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %v", err)
	}

	db, err := config.InitDatabase(cfg)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %v", err)
	}
	defer config.CloseDatabase(db)

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return fmt.Errorf("JWT_SECRET not configured")
	}
	tokens := token.New(secret)

	log := logger.NewLogger("eventlista")

	r := gin.Default()

	setupRoutes(r, db, tokens)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server listening")
	return r.Run(":" + port)
}

func setupRoutes(r *gin.Engine, db *gorm.DB, tokens *token.Service) {
	r.Use(middleware.DatabaseMiddleware(db))
	r.Use(middleware.TokenServiceMiddleware(tokens))

	public := r.Group("/v1")
	{
		public.POST("/register", handlers.Register)
		public.POST("/login", handlers.Login)
		public.POST("/logout", handlers.Logout)

		eventPublic := public.Group("/events")
		{
			eventPublic.GET("", handlers.ListEvents)
			eventPublic.GET("/search", handlers.SearchEvents)
			eventPublic.GET("/most-visited", handlers.MostVisitedEvents)
			eventPublic.GET("/top-reacted", handlers.TopReactedEvents)
			eventPublic.GET("/related", handlers.RelatedEvents)
			eventPublic.GET("/by-tag/:name", handlers.EventsByTag)
			eventPublic.GET("/:id", handlers.GetEvent)
			eventPublic.POST("/:id/comments", handlers.CreateComment)
		}

		categoryPublic := public.Group("/categories")
		{
			categoryPublic.GET("", handlers.ListCategories)
			categoryPublic.GET("/:id", handlers.GetCategory)
			categoryPublic.GET("/:id/events", handlers.CategoryEvents)
		}
	}

	protected := r.Group("/v1")
	protected.Use(middleware.JWTAuthMiddleware(tokens))
	{
		eventProtected := protected.Group("/events")
		{
			eventProtected.POST("", handlers.CreateEvent)
			eventProtected.PUT("/:id", handlers.UpdateEvent)
			eventProtected.DELETE("/:id", handlers.DeleteEvent)
			eventProtected.POST("/:id/view", handlers.RecordView)
			eventProtected.POST("/:id/reaction", handlers.ReactToEvent)
			eventProtected.POST("/comments/:id/reaction", handlers.ReactToComment)
		}

		categoryProtected := protected.Group("/categories")
		{
			categoryProtected.POST("", handlers.CreateCategory)
			categoryProtected.PUT("/:id", handlers.UpdateCategory)
			categoryProtected.DELETE("/:id", handlers.DeleteCategory)
		}

		protected.GET("/profile", handlers.GetProfile)

		admin := protected.Group("/admin")
		admin.Use(middleware.RequireRole(models.RoleAdmin))
		{
			admin.GET("/users", handlers.ListUsers)
			admin.POST("/users", handlers.CreateUser)
			admin.GET("/users/:id", handlers.GetUser)
			admin.PUT("/users/:id", handlers.UpdateUser)
			admin.DELETE("/users/:id", handlers.DeleteUser)
		}
	}
}
