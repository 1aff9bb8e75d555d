package main

import (
	"log"

	"github.com/vikyath5246/quizapp/internal/config"
	"github.com/vikyath5246/quizapp/internal/database"
	"github.com/vikyath5246/quizapp/internal/handlers"
	"github.com/vikyath5246/quizapp/internal/logger"
	"github.com/vikyath5246/quizapp/internal/middleware"
	"github.com/vikyath5246/quizapp/internal/services"

	_ "github.com/vikyath5246/quizapp/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title           Quiz App API
// @version         1.0
// @description     API for taking multiple-choice quizzes and tracking scores
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {token}"

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg, err := logger.New(cfg.Env)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logg.Sync()

	db := database.Connect(cfg, logg)
	database.AutoMigrate(db, logg)
	database.Seed(db, logg)

	authService := services.NewAuthService(db, cfg.JWTSecret)
	questionService := services.NewQuestionService(db)
	quizService := services.NewQuizService(db)

	authHandler := handlers.NewAuthHandler(authService)
	questionHandler := handlers.NewQuestionHandler(questionService)
	quizHandler := handlers.NewQuizHandler(quizService)
	scoreHandler := handlers.NewScoreHandler(quizService)

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
	}))

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := r.Group("/api/v1")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.GET("/me", middleware.JWTAuth(authService), authHandler.Me)
		}

		questions := api.Group("/questions")
		questions.Use(middleware.JWTAuth(authService), middleware.AdminOnly())
		{
			questions.GET("", questionHandler.ListQuestions)
			questions.POST("", questionHandler.CreateQuestion)
			questions.GET("/:id", questionHandler.GetQuestion)
			questions.PUT("/:id", questionHandler.UpdateQuestion)
			questions.DELETE("/:id", questionHandler.DeleteQuestion)
		}

		quiz := api.Group("/quiz")
		quiz.Use(middleware.JWTAuth(authService))
		{
			quiz.GET("/start", quizHandler.StartQuiz)
			quiz.POST("/submit", quizHandler.SubmitQuiz)
		}

		scores := api.Group("/scores")
		scores.Use(middleware.JWTAuth(authService))
		{
			scores.GET("", scoreHandler.GetUserScores)
		}
	}

	logg.Info("server starting", "port", cfg.ServerPort)
	if err := r.Run(":" + cfg.ServerPort); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}
