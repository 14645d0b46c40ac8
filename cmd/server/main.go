package main

import (
	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog/log"

	"github.com/querytoheal/health-qa-api/internal/config"
	"github.com/querytoheal/health-qa-api/internal/constants"
	"github.com/querytoheal/health-qa-api/internal/database"
	"github.com/querytoheal/health-qa-api/internal/handlers"
	"github.com/querytoheal/health-qa-api/internal/logger"
	"github.com/querytoheal/health-qa-api/internal/middleware"
	"github.com/querytoheal/health-qa-api/internal/repository"
	"github.com/querytoheal/health-qa-api/internal/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	logger.Setup(cfg.GinMode)

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Connect to database
	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}

	// Run migrations
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	// Initialize Gin router
	r := gin.New()
	r.Use(logger.RequestLogger(), gin.Recovery())

	// Setup session middleware with Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create Redis store")
	}
	// Configure session options based on environment
	isProduction := cfg.GinMode == gin.ReleaseMode
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction, // true in production (HTTPS), false in development
		SameSite: 2,            // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	// Initialize repositories and services
	db := database.GetDB()
	userRepo := repository.NewUserRepository(db)
	questionRepo := repository.NewQuestionRepository(db)
	answerRepo := repository.NewAnswerRepository(db)

	authService := services.NewAuthService(userRepo)
	questionService := services.NewQuestionService(questionRepo)
	answerService := services.NewAnswerService(answerRepo, questionRepo)

	// Initialize handlers
	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	answerHandler := handlers.NewAnswerHandler(answerService)
	profileHandler := handlers.NewProfileHandler(questionService, answerService)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Health Q&A API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/user", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Question routes (reads are public, writes require a session)
		questions := api.Group("/questions")
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", middleware.RequireAuth(), questionHandler.CreateQuestion)
			questions.GET("/:id", middleware.RequireQuestion(), questionHandler.GetQuestion)
			questions.DELETE("/:id", middleware.RequireAuth(), middleware.RequireQuestion(), questionHandler.DeleteQuestion)
			questions.GET("/:id/answers", middleware.RequireQuestion(), answerHandler.ListAnswers)
			questions.POST("/:id/answers", middleware.RequireAuth(), middleware.RequireQuestion(), answerHandler.CreateAnswer)
		}

		// Answer routes
		answers := api.Group("/answers")
		{
			answers.PATCH("/:id/upvote", middleware.RequireAuth(), answerHandler.UpvoteAnswer)
		}

		// Public profile routes
		users := api.Group("/users")
		{
			users.GET("/:id/questions", profileHandler.GetUserQuestions)
			users.GET("/:id/answers", profileHandler.GetUserAnswers)
		}
	}

	// Start server
	log.Info().Str("port", cfg.Port).Msg("server starting")
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
