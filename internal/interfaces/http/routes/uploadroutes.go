package routes

import (
	"github.com/gin-gonic/gin"

	uploadhandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/upload"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
)

type UploadRouteConfig struct {
	UploadHandler  *uploadhandlers.UploadHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupUploadRoutes(engine *gin.Engine, config *UploadRouteConfig) {
	engine.POST("/upload", config.AuthMiddleware.RequireAuth(), config.UploadHandler.Upload)
}
