package main

import (
	"context"
	"log"
	"net/http"

	"travisco/api/router"
	"travisco/config"
	"travisco/db"
	_ "travisco/docs"
	"travisco/identity"
	"travisco/logger"
	"travisco/repositories"
	"travisco/services"
	"travisco/storage"
	"travisco/vision"
)

// @title           Travisco API
// @version         1.0
// @description     Monument identification and community posts
// @BasePath        /
func main() {
	config.InitApp()
	cfg := config.GetConfig()
	logger.Init(cfg.Logging.Level)

	ctx := context.Background()
	if err := db.Init(ctx); err != nil {
		log.Fatal("failed to initialize MongoDB:", err)
	}

	visionClient, err := vision.NewClient(ctx, cfg.GeminiApiKey, cfg.GeminiModel)
	if err != nil {
		log.Fatal("failed to create Gemini client:", err)
	}

	mediaStore, err := storage.NewCloudinaryStore(cfg.CloudinaryURL)
	if err != nil {
		log.Fatal("failed to create Cloudinary store:", err)
	}

	userRepo := repositories.NewUserRepository(db.Database())
	postRepo := repositories.NewCommunityPostRepository(db.Database())
	gateway := identity.NewMongoGateway(userRepo)

	r := router.New(router.Deps{
		Auth:      services.NewAuthService(gateway),
		Finder:    services.NewFinderService(visionClient),
		Community: services.NewCommunityService(postRepo, mediaStore),
	})

	port := cfg.HTTP.Port
	if port == "" {
		port = "8000"
	}
	if err := r.Run(":" + port); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
