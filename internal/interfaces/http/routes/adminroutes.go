package routes

import (
	"github.com/gin-gonic/gin"

	reporthandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/report"
	tickethandlers "github.com/helpdesk-inc/helpdesk/internal/interfaces/http/handlers/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/interfaces/http/middleware"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
)

type AdminRouteConfig struct {
	TicketHandler  *tickethandlers.TicketHandler
	ReportHandler  *reporthandlers.ReportHandler
	AuthMiddleware *middleware.AuthMiddleware
}

func SetupAdminRoutes(engine *gin.Engine, config *AdminRouteConfig) {
	admin := engine.Group("/admin")
	admin.Use(config.AuthMiddleware.RequireAuth(), authorization.RequireAdmin())
	{
		admin.GET("/tickets-images", config.TicketHandler.ListTicketImages)

		reports := admin.Group("/reports")
		{
			reports.POST("/excel", config.ReportHandler.ExportExcel)
			reports.POST("/pdf", config.ReportHandler.ExportPDF)
		}
	}
}
