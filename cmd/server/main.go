package main

import (
	"log"
	"strings"

	"github.com/gesscam/community-portal/internal/bootstrap"
	"github.com/gesscam/community-portal/internal/config"
	"github.com/gesscam/community-portal/internal/handler"
	"github.com/gesscam/community-portal/internal/middleware"
	"github.com/gesscam/community-portal/internal/repository"
	"github.com/gesscam/community-portal/internal/service"
	"github.com/gesscam/community-portal/pkg/database"
	"github.com/gesscam/community-portal/pkg/storage"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		log.Fatalf("failed to connect to database: %v", err)
	}
	if err := bootstrap.Migrate(db); err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	if err := bootstrap.Seed(db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}

	// Redis is optional; without it the login/comment cooldowns are skipped.
	var redisClient *redis.Client
	if cfg.RedisURL != "" {
		opts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			log.Fatalf("invalid REDIS_URL: %v", err)
		}
		redisClient = redis.NewClient(opts)
	} else {
		log.Println("REDIS_URL not set, rate limiting disabled")
	}

	imageStorage, err := storage.NewCloudinaryStorage()
	if err != nil {
		log.Fatalf("failed to initialize cloudinary storage: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	categoryRepo := repository.NewCategoryRepository(db)
	newsRepo := repository.NewNewsRepository(db)
	galleryRepo := repository.NewGalleryRepository(db)
	commentRepo := repository.NewCommentRepository(db)
	execRepo := repository.NewExecRepository(db)
	pageRepo := repository.NewPageRepository(db)
	aboutRepo := repository.NewAboutRepository(db)
	homeRepo := repository.NewHomeRepository(db)

	authService := service.NewAuthService(userRepo, redisClient, cfg.SessionSecret, cfg.SessionTTL, cfg.LoginCooldown)
	categoryService := service.NewCategoryService(categoryRepo)
	newsService := service.NewNewsService(newsRepo, categoryRepo, categoryService)
	galleryService := service.NewGalleryService(galleryRepo, categoryRepo, categoryService)
	commentService := service.NewCommentService(commentRepo, newsRepo, userRepo, redisClient, cfg.CommentCooldown)
	execService := service.NewExecService(execRepo)
	pageService := service.NewPageService(pageRepo)
	aboutService := service.NewAboutService(aboutRepo)
	homeService := service.NewHomeService(homeRepo)

	secureCookie := cfg.AppEnv == "production"
	authHandler := handler.NewAuthHandler(authService, secureCookie)
	newsHandler := handler.NewNewsHandler(newsService, categoryService)
	galleryHandler := handler.NewGalleryHandler(galleryService, categoryService)
	commentHandler := handler.NewCommentHandler(commentService)
	execHandler := handler.NewExecHandler(execService)
	pageHandler := handler.NewPageHandler(pageService)
	aboutHandler := handler.NewAboutHandler(aboutService)
	homeHandler := handler.NewHomeHandler(homeService)
	uploadHandler := handler.NewUploadHandler(imageStorage, cfg.CloudinaryUploadFolder)

	authMiddleware := middleware.NewAuthMiddleware(userRepo, cfg.SessionSecret)

	router := gin.Default()
	router.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Split(cfg.AllowedOrigins, ","),
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	handler.RegisterRoutes(router, handler.Handlers{
		Auth:    authHandler,
		News:    newsHandler,
		Gallery: galleryHandler,
		Comment: commentHandler,
		Exec:    execHandler,
		Page:    pageHandler,
		About:   aboutHandler,
		Home:    homeHandler,
		Upload:  uploadHandler,
	}, authMiddleware)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server exited with error: %v", err)
	}
}
