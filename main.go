package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/Brahim-Amzil/3arida-sub000/cache"
	"github.com/Brahim-Amzil/3arida-sub000/config"
	"github.com/Brahim-Amzil/3arida-sub000/handlers"
	"github.com/Brahim-Amzil/3arida-sub000/helper"
	"github.com/Brahim-Amzil/3arida-sub000/metrics"
	"github.com/Brahim-Amzil/3arida-sub000/middleware"
	"github.com/Brahim-Amzil/3arida-sub000/models"
	"github.com/Brahim-Amzil/3arida-sub000/repositories"
	"github.com/Brahim-Amzil/3arida-sub000/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/time/rate"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}

	// Initialize database
	db := config.InitDB()

	// Optional redis cache for petition statistics
	var statsCache *cache.StatsCache
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		var err error
		statsCache, err = cache.NewStatsCache(redisURL, 30*time.Second)
		if err != nil {
			log.Println("Stats cache disabled:", err)
		}
	}

	// Initialize repositories
	userRepo := repositories.NewUserRepository(db)
	petitionRepo := repositories.NewPetitionRepository(db)
	signatureRepo := repositories.NewSignatureRepository(db)
	moderatorRepo := repositories.NewModeratorRepository(db)
	tagRepo := repositories.NewTagRepository(db)

	// Initialize services
	authService := services.NewAuthService(userRepo)
	petitionService := services.NewPetitionService(petitionRepo, tagRepo)
	signatureService := services.NewSignatureService(signatureRepo, petitionRepo, moderatorRepo, statsCache)
	moderatorService := services.NewModeratorService(moderatorRepo, userRepo, petitionService)

	// Initialize handlers
	httpHelper := helper.NewHTTPHelper()
	authHandler := handlers.NewAuthHandler(authService, httpHelper)
	petitionHandler := handlers.NewPetitionHandler(petitionService, httpHelper)
	signatureHandler := handlers.NewSignatureHandler(signatureService, httpHelper)
	adminHandler := handlers.NewAdminHandler(moderatorService, httpHelper)

	metrics.Init()
	signLimiter := middleware.NewRateLimiter(rate.Every(10*time.Second), 5)

	// Setup router
	router := gin.Default()
	router.Use(metrics.Instrument())

	// CORS middleware
	router.Use(func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})
	router.GET("/metrics", metrics.Handler())

	// API routes
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		// Public routes, auth optional
		v1.GET("/pricing", petitionHandler.GetPricing)
		public := v1.Group("/petitions")
		public.Use(middleware.OptionalAuthMiddleware())
		{
			public.GET("", petitionHandler.GetPetitions)
			public.GET("/:id", petitionHandler.GetPetition)
			public.GET("/:id/signatures", signatureHandler.GetPetitionSignatures)
			public.GET("/:id/qr", petitionHandler.GetPetitionQR)
		}

		// Protected routes
		protected := v1.Group("/")
		protected.Use(middleware.AuthMiddleware())
		{
			protected.GET("/profile", authHandler.GetProfile)
			protected.PUT("/profile", authHandler.UpdateProfile)

			petitions := protected.Group("/petitions")
			{
				petitions.POST("", petitionHandler.CreatePetition)
				petitions.PUT("/:id", petitionHandler.UpdatePetition)
				petitions.DELETE("/:id", petitionHandler.DeletePetition)
				petitions.POST("/:id/submit", petitionHandler.SubmitPetition)
				petitions.POST("/sign", middleware.RateLimitMiddleware(signLimiter), signatureHandler.SignPetition)
				petitions.GET("/:id/stats", signatureHandler.GetPetitionStats)
			}

			// Moderation requires at least the moderator role; admins
			// manage users and moderator grants.
			admin := protected.Group("/admin")
			{
				admin.POST("/moderate-petition", middleware.RequireRole(models.RoleModerator), adminHandler.ModeratePetition)

				adminOnly := admin.Group("/")
				adminOnly.Use(middleware.RequireRole(models.RoleAdmin))
				{
					adminOnly.GET("/users", adminHandler.GetUsers)
					adminOnly.PUT("/users/:id", adminHandler.UpdateUser)
					adminOnly.GET("/moderators", adminHandler.GetModerators)
					adminOnly.POST("/moderators", adminHandler.AssignModerator)
					adminOnly.DELETE("/moderators/:user_id", adminHandler.RevokeModerator)
				}
			}
		}
	}

	// Start server
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	log.Printf("Server starting on port %s", port)
	log.Fatal(http.ListenAndServe(":"+port, router))
}
