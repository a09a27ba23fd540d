package api

import (
	"net/http"
	"slices"
	"time"

	"github.com/andrevictorbritodeandrade-alt/abfit/internal/domain"
	"github.com/andrevictorbritodeandrade-alt/abfit/internal/service"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter creates the engine with recovery, request logging and CORS for
// the browser client. A "*" origin allows every origin.
func NewRouter(allowedOrigins []string) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestLogger())

	corsConfig := cors.Config{
		AllowMethods: []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if len(allowedOrigins) == 0 || slices.Contains(allowedOrigins, "*") {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = allowedOrigins
	}
	router.Use(cors.New(corsConfig))

	return router
}

//go:generate mockgen -destination=service_mocks_test.go -package=api_test github.com/andrevictorbritodeandrade-alt/abfit/internal/service AthleteService,AuthService,CoachService

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	coachService service.CoachService,
	athleteService service.AthleteService,
) {
	authHandler := NewAuthHandler(authService)
	coachHandler := NewCoachHandler(coachService)
	athleteHandler := NewAthleteHandler(athleteService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(AuthMiddleware(jwtSecret))
	{
		// --- Coach Routes ---
		coachGroup := protected.Group("/coach")
		coachGroup.Use(RoleMiddleware(domain.RoleCoach))
		{
			coachGroup.GET("/athletes", coachHandler.ListAthletes)
			coachGroup.GET("/athletes/stream", coachHandler.StreamAthletes)
			coachGroup.GET("/athletes/:id", coachHandler.GetAthlete)
			coachGroup.PATCH("/athletes/:id", coachHandler.UpdateAthlete)
			coachGroup.POST("/athletes/:id/account", authHandler.CreateAthleteAccount)

			coachGroup.POST("/athletes/:id/plans", coachHandler.AssignPlan)
			coachGroup.POST("/athletes/:id/plans/:planId/publish", coachHandler.PublishPlan)
			coachGroup.GET("/athletes/:id/plans/progress", coachHandler.GetPlanProgress)

			coachGroup.GET("/notifications", coachHandler.GetNotifications)
		}

		// --- Athlete Routes ---
		meGroup := protected.Group("/me")
		meGroup.Use(RoleMiddleware(domain.RoleAthlete))
		{
			meGroup.GET("/plans", athleteHandler.GetMyPlans)
			meGroup.POST("/sessions", athleteHandler.LogSession)
			meGroup.GET("/dashboard", athleteHandler.GetDashboard)
			meGroup.POST("/photos/upload-url", athleteHandler.RequestPhotoUploadURL)
			meGroup.GET("/photos/url", athleteHandler.GetPhotoURL)
			meGroup.DELETE("/photos", athleteHandler.DeletePhoto)
		}
	}
}
