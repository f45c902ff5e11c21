package report

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/application/report/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type ReportHandler struct {
	exportUC *usecases.ExportTicketsUseCase
	logger   logger.Interface
}

func NewReportHandler(exportUC *usecases.ExportTicketsUseCase) *ReportHandler {
	return &ReportHandler{
		exportUC: exportUC,
		logger:   logger.NewLogger(),
	}
}

type exportRequest struct {
	Status string `json:"status"`
}

// ExportExcel handles POST /admin/reports/excel (admin only)
func (h *ReportHandler) ExportExcel(c *gin.Context) {
	h.export(c, usecases.FormatExcel)
}

// ExportPDF handles POST /admin/reports/pdf (admin only)
func (h *ReportHandler) ExportPDF(c *gin.Context) {
	h.export(c, usecases.FormatPDF)
}

func (h *ReportHandler) export(c *gin.Context, format usecases.ReportFormat) {
	var req exportRequest
	// Body is optional; an empty or absent body means no status filter.
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
			return
		}
	}

	result, err := h.exportUC.Execute(c.Request.Context(), usecases.ExportTicketsCommand{
		Status: req.Status,
		Format: format,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", result.FileName))
	c.Data(http.StatusOK, result.ContentType, result.Content)
}
