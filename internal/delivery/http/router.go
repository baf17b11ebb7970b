package http

import (
	"log/slog"
	"time"

	"github.com/astrodate/astrodate-backend/internal/delivery/http/handler"
	"github.com/astrodate/astrodate-backend/internal/delivery/http/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

type Router struct {
	authHandler    *handler.AuthHandler
	userHandler    *handler.UserHandler
	authMiddleware *middleware.AuthMiddleware
	log            *slog.Logger
	imagesDir      string
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	authMiddleware *middleware.AuthMiddleware,
	log *slog.Logger,
	imagesDir string,
) *Router {
	return &Router{
		authHandler:    authHandler,
		userHandler:    userHandler,
		authMiddleware: authMiddleware,
		log:            log,
		imagesDir:      imagesDir,
	}
}

func (r *Router) Setup() *gin.Engine {
	registerValidations()

	router := gin.New()
	router.Use(middleware.Recovery(r.log))
	router.Use(middleware.RequestLogger(r.log))
	router.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// Avatar images under a fixed public prefix
	if r.imagesDir != "" {
		router.Static("/images", r.imagesDir)
	}

	auth := router.Group("/auth")
	{
		auth.POST("/register", r.authHandler.Register)
		auth.POST("/login", r.authHandler.Login)
		auth.POST("/logout", r.authHandler.Logout)
		auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
	}

	users := router.Group("/users")
	users.Use(r.authMiddleware.RequireAuth())
	{
		users.GET("/all", r.userHandler.All)
		users.GET("/discover", r.userHandler.Discover)
		users.POST("/swipe/:user_id/:is_like", r.userHandler.Swipe)
		users.GET("/likes", r.userHandler.Likes)
		users.GET("/likes/count", r.userHandler.LikesCount)
		users.GET("/my-likes", r.userHandler.MyLikes)
	}

	return router
}
