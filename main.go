package main

import (
	"context"
	"os"

	"comenta-app/internal/config"
	"comenta-app/internal/database"
	"comenta-app/internal/handlers"
	"comenta-app/internal/middleware"
	"comenta-app/internal/models"
	"comenta-app/internal/redis"
	"comenta-app/internal/services"
	"comenta-app/internal/websocket"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found")
	}

	cfg := config.Load()
	setupLogging(cfg)
	gin.SetMode(cfg.GinMode)
	registerValidations()

	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logrus.Fatal("Failed to connect to database: ", err)
	}

	if err := database.SeedCategories(db); err != nil {
		logrus.Fatal("Failed to seed categories: ", err)
	}

	redisClient, err := redis.Initialize(cfg.RedisURL)
	if err != nil {
		logrus.Fatal("Failed to connect to Redis: ", err)
	}

	storage, err := services.NewStorageService(cfg)
	if err != nil {
		logrus.Fatal("Failed to initialize storage: ", err)
	}
	if err := storage.EnsureBucket(context.Background()); err != nil {
		logrus.Fatal("Failed to ensure media bucket: ", err)
	}

	// Live feed hub
	hub := websocket.NewHub()
	go hub.Run()

	// Services
	complaintService := services.NewComplaintService(db)
	dashboardService := services.NewDashboardService(db)
	likeService := services.NewLikeService(db)
	commentService := services.NewCommentService(db)

	// Handlers
	authHandler := handlers.NewAuthHandler(db, redisClient, cfg)
	userHandler := handlers.NewUserHandler(db, storage, cfg)
	complaintHandler := handlers.NewComplaintHandler(complaintService, hub)
	likeHandler := handlers.NewLikeHandler(likeService)
	commentHandler := handlers.NewCommentHandler(commentService)
	dashboardHandler := handlers.NewDashboardHandler(dashboardService, hub)
	uploadHandler := handlers.NewUploadHandler(storage)

	router := setupRoutes(cfg, hub, redisClient, authHandler, userHandler, complaintHandler,
		likeHandler, commentHandler, dashboardHandler, uploadHandler)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.Port
	}

	logrus.Infof("Server starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logrus.Fatal("Failed to start server: ", err)
	}
}

func setupLogging(cfg *config.Config) {
	if cfg.GinMode == gin.ReleaseMode {
		logrus.SetFormatter(&logrus.JSONFormatter{})
	}
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	logrus.SetLevel(level)
}

// registerValidations adds the complaint status rule so binding tags can
// reject unrecognized statuses declaratively.
func registerValidations() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		v.RegisterValidation("complaintstatus", func(fl validator.FieldLevel) bool {
			_, ok := models.ParseStatus(fl.Field().String())
			return ok
		})
	}
}

func setupRoutes(cfg *config.Config, hub *websocket.Hub, sessions middleware.SessionStore,
	authHandler *handlers.AuthHandler, userHandler *handlers.UserHandler,
	complaintHandler *handlers.ComplaintHandler, likeHandler *handlers.LikeHandler,
	commentHandler *handlers.CommentHandler, dashboardHandler *handlers.DashboardHandler,
	uploadHandler *handlers.UploadHandler) *gin.Engine {

	router := gin.Default()

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	v1 := router.Group("/api/v1")
	{
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", middleware.AuthRequired(cfg, sessions), authHandler.Logout)
		}

		users := v1.Group("/users")
		users.Use(middleware.AuthRequired(cfg, sessions))
		{
			users.GET("/profile", userHandler.GetProfile)
			users.PUT("/profile", userHandler.UpdateProfile)
			users.POST("/profile/avatar", userHandler.UploadAvatar)
		}

		// Reads allow anonymous viewers; a valid token attaches the caller
		// so "liked by me" can be computed.
		complaints := v1.Group("/complaints")
		{
			complaints.POST("", middleware.AuthRequired(cfg, sessions), complaintHandler.Create)
			complaints.GET("", middleware.OptionalAuth(cfg, sessions), complaintHandler.List)
			complaints.GET("/search", middleware.OptionalAuth(cfg, sessions), complaintHandler.Search)
			complaints.GET("/categories", complaintHandler.Categories)
			complaints.GET("/:id", middleware.OptionalAuth(cfg, sessions), complaintHandler.GetByID)
		}

		likes := v1.Group("/likes")
		likes.Use(middleware.AuthRequired(cfg, sessions))
		{
			likes.POST("/:complaintId", likeHandler.Toggle)
			likes.GET("/:complaintId", likeHandler.Status)
		}

		comments := v1.Group("/comments")
		{
			comments.POST("/:complaintId", middleware.AuthRequired(cfg, sessions), commentHandler.Create)
			comments.GET("/:complaintId", commentHandler.List)
			comments.DELETE("/:commentId", middleware.AuthRequired(cfg, sessions), commentHandler.Delete)
		}

		dashboard := v1.Group("/dashboard")
		dashboard.Use(middleware.AuthRequired(cfg, sessions), middleware.AdminRequired())
		{
			dashboard.GET("/statistics", dashboardHandler.GetStatistics)
			dashboard.PUT("/complaint/:id/status", dashboardHandler.UpdateComplaintStatus)
		}

		upload := v1.Group("/upload")
		upload.Use(middleware.AuthRequired(cfg, sessions))
		{
			upload.POST("/media", uploadHandler.UploadMedia)
			upload.POST("/media/batch", uploadHandler.UploadMediaBatch)
		}

		v1.GET("/ws/feed", middleware.AuthRequired(cfg, sessions), func(c *gin.Context) {
			websocket.HandleWebSocket(hub, c)
		})
	}

	return router
}
