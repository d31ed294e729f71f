package http

import (
	"time"

	"github.com/gdugdh24/thirdplace-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/thirdplace-backend/internal/delivery/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Router struct {
	authHandler    *handler.AuthHandler
	profileHandler *handler.ProfileHandler
	matchHandler   *handler.MatchHandler
	authMiddleware *middleware.AuthMiddleware
	allowedOrigins []string
	logger         *zap.Logger
}

func NewRouter(
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	matchHandler *handler.MatchHandler,
	authMiddleware *middleware.AuthMiddleware,
	allowedOrigins []string,
	logger *zap.Logger,
) *Router {
	return &Router{
		authHandler:    authHandler,
		profileHandler: profileHandler,
		matchHandler:   matchHandler,
		authMiddleware: authMiddleware,
		allowedOrigins: allowedOrigins,
		logger:         logger,
	}
}

func (r *Router) corsConfig() cors.Config {
	config := cors.Config{
		AllowMethods:     []string{"GET", "POST", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{handler.MatchSourceHeader},
		MaxAge:           12 * time.Hour,
		AllowCredentials: false,
	}
	if len(r.allowedOrigins) == 0 || (len(r.allowedOrigins) == 1 && r.allowedOrigins[0] == "*") {
		config.AllowAllOrigins = true
	} else {
		config.AllowOrigins = r.allowedOrigins
	}
	return config
}

func (r *Router) Setup() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger(r.logger))
	router.Use(cors.New(r.corsConfig()))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", r.authHandler.Register)
			auth.POST("/login", r.authHandler.Login)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		profiles := api.Group("/profiles")
		{
			profiles.POST("", r.profileHandler.CreateProfile)
			profiles.GET("/:id", r.profileHandler.GetProfile)
		}

		api.POST("/match", r.matchHandler.Match)
		api.GET("/candidates", r.matchHandler.ListCandidates)
	}

	return router
}
