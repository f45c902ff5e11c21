package routes

import (
	"github.com/gin-gonic/gin"

	authhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/auth"
)

type AuthRouteConfig struct {
	AuthHandler *authhandlers.AuthHandler
	RateLimit   gin.HandlerFunc
}

func SetupAuthRoutes(engine *gin.Engine, config *AuthRouteConfig) {
	auth := engine.Group("/auth")
	{
		if config.RateLimit != nil {
			auth.Use(config.RateLimit)
		}
		auth.POST("/register", config.AuthHandler.Register)
		auth.POST("/login", config.AuthHandler.Login)
	}
}
