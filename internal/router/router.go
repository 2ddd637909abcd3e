package router

import (
	"fmt"
	"net/http"

	"github.com/crickhub-dev/crickhub/internal/config"
	"github.com/crickhub-dev/crickhub/internal/handlers"
	"github.com/crickhub-dev/crickhub/internal/middleware"
	"github.com/crickhub-dev/crickhub/internal/session"
	"github.com/crickhub-dev/crickhub/internal/types"
	"github.com/gin-gonic/gin"
)

func NewRouter(cfg *config.Config, sessions *session.Store) *gin.Engine {
	r := gin.Default()

	r.Use(middleware.CORS(cfg.AllowedOrigins))
	r.Use(middleware.Session(sessions))

	authHandler := handlers.NewAuthHandler(sessions)
	admin := middleware.RequireRole(types.RoleAdmin)

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", authHandler.Me)
		}

		players := api.Group("/players")
		{
			players.GET("", handlers.ListPlayers)
			players.GET("/:id", handlers.GetPlayer)
			players.POST("", admin, handlers.CreatePlayer)
			players.PUT("/:id", admin, handlers.UpdatePlayer)
			players.PATCH("/:id", admin, handlers.UpdatePlayer)
			players.DELETE("/:id", admin, handlers.DeletePlayer)
		}

		teams := api.Group("/teams")
		{
			teams.GET("", handlers.ListTeams)
			teams.GET("/:id", handlers.GetTeam)
			teams.POST("", admin, handlers.CreateTeam)
			teams.PUT("/:id", admin, handlers.UpdateTeam)
			teams.PATCH("/:id", admin, handlers.UpdateTeam)
			teams.DELETE("/:id", admin, handlers.DeleteTeam)
		}

		matches := api.Group("/matches")
		{
			matches.GET("", handlers.ListMatches)
			matches.GET("/:id", handlers.GetMatch)
			matches.POST("", admin, handlers.CreateMatch)
			matches.PUT("/:id", admin, handlers.UpdateMatch)
			matches.PATCH("/:id", admin, handlers.UpdateMatch)
			matches.DELETE("/:id", admin, handlers.DeleteMatch)
		}
	}

	r.NoRoute(func(ctx *gin.Context) {
		method := ctx.Request.Method
		path := ctx.Request.URL.Path

		ctx.JSON(http.StatusNotFound, gin.H{
			"error":   "Not Found",
			"method":  method,
			"path":    path,
			"message": fmt.Sprintf("No route found for %s %s", method, path),
		})
	})

	return r
}
