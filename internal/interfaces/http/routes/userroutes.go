package routes

import (
	"github.com/gin-gonic/gin"

	userhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/user"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
)

type UserRouteConfig struct {
	UserHandler    *userhandlers.UserHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUserRoutes(engine *gin.Engine, config *UserRouteConfig) {
	user := engine.Group("/user")
	user.Use(config.AuthMiddleware.RequireAuth())
	{
		user.GET("/profile", config.UserHandler.GetProfile)
		user.GET("/notifications", config.UserHandler.ListNotifications)
	}
}
