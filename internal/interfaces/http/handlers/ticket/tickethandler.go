package ticket

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/storage"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC usecases.CreateTicketExecutor
	updateTicketUC usecases.UpdateTicketExecutor
	getTicketUC    usecases.GetTicketExecutor
	listTicketsUC  usecases.ListTicketsExecutor
	listImagesUC   usecases.ListTicketImagesExecutor
	storage        *storage.LocalStorage
	logger         logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	listImagesUC usecases.ListTicketImagesExecutor,
	store *storage.LocalStorage,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC: createTicketUC,
		updateTicketUC: updateTicketUC,
		getTicketUC:    getTicketUC,
		listTicketsUC:  listTicketsUC,
		listImagesUC:   listImagesUC,
		storage:        store,
		logger:         logger.NewLogger(),
	}
}

// CreateTicket handles POST /tickets. Accepts a JSON body, or a multipart
// form with an optional "image" file that is stored before the ticket is
// created.
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest

	if strings.HasPrefix(c.ContentType(), "multipart/form-data") {
		if err := c.ShouldBind(&req); err != nil {
			h.logger.Warnw("invalid multipart form for create ticket", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}

		file, header, err := c.Request.FormFile("image")
		if err == nil {
			defer file.Close()
			url, saveErr := h.storage.Save(storage.KindUserReport, header.Filename, header.Size, file)
			if saveErr != nil {
				utils.ErrorResponseWithError(c, saveErr)
				return
			}
			req.ImageUserURL = &url
		}
	} else {
		if err := c.ShouldBindJSON(&req); err != nil {
			h.logger.Warnw("invalid request body for create ticket", "error", err)
			utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
			return
		}
	}

	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(c.GetUint("user_id")))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"ticketId": result.TicketID,
		"category": result.Category,
		"status":   result.Status,
	}, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		TicketID: ticketID,
		UserID:   c.GetUint("user_id"),
		IsAdmin:  isAdmin(c),
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	var req ListTicketsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(c.GetUint("user_id"), isAdmin(c)))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

// UpdateTicket handles PATCH /tickets/:id (admin only)
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := utils.ParseUintParam(c, "id", "ticket")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request: "+err.Error())
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), req.ToCommand(ticketID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", gin.H{
		"ticketId": result.TicketID,
		"status":   result.Status,
	})
}

// ListTicketImages handles GET /admin/tickets-images (admin only)
func (h *TicketHandler) ListTicketImages(c *gin.Context) {
	result, err := h.listImagesUC.Execute(c.Request.Context(), usecases.ListTicketImagesQuery{})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result.Tickets)
}

func isAdmin(c *gin.Context) bool {
	return authorization.UserRole(c.GetString("user_role")).IsAdmin()
}
