package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"travisco/api/handlers"
	"travisco/config"
	"travisco/db"
	_ "travisco/docs"
	"travisco/services"
)

// Deps holds the constructed services injected into the HTTP surface.
type Deps struct {
	Auth      *services.AuthService
	Finder    *services.FinderService
	Community *services.CommunityService
}

func New(deps Deps) *gin.Engine {
	cfg := config.GetConfig()

	r := gin.Default()
	if cfg.Uploads.MaxMultipartMB > 0 {
		r.MaxMultipartMemory = cfg.Uploads.MaxMultipartMB << 20
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Accept"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded", "mongo": "down", "error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	r.GET("/", handlers.WelcomeHandler())
	r.POST("/signup", handlers.SignupHandler(deps.Auth))
	r.POST("/login", handlers.LoginHandler(deps.Auth))
	r.POST("/find", handlers.FindMonumentHandler(deps.Finder))

	r.GET("/community", handlers.ListAllCommunityPostsHandler(deps.Community))
	r.GET("/community/:monument_name", handlers.ListCommunityPostsHandler(deps.Community))
	r.POST("/community/post", handlers.CreateCommunityPostHandler(deps.Community))

	return r
}
