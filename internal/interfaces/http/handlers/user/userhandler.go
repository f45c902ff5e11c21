package user

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/application/user/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type UserHandler struct {
	getProfileUC        *usecases.GetProfileUseCase
	listNotificationsUC *usecases.ListNotificationsUseCase
	logger              logger.Interface
}

func NewUserHandler(
	getProfileUC *usecases.GetProfileUseCase,
	listNotificationsUC *usecases.ListNotificationsUseCase,
) *UserHandler {
	return &UserHandler{
		getProfileUC:        getProfileUC,
		listNotificationsUC: listNotificationsUC,
		logger:              logger.NewLogger(),
	}
}

// GetProfile handles GET /user/profile
func (h *UserHandler) GetProfile(c *gin.Context) {
	result, err := h.getProfileUC.Execute(c.Request.Context(), usecases.GetProfileQuery{
		UserID: c.GetUint("user_id"),
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListNotifications handles GET /user/notifications
func (h *UserHandler) ListNotifications(c *gin.Context) {
	var req ListNotificationsRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid query parameters")
		return
	}

	result, err := h.listNotificationsUC.Execute(c.Request.Context(), usecases.ListNotificationsQuery{
		UserID: c.GetUint("user_id"),
		Limit:  req.Limit,
		Offset: req.Offset,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

type ListNotificationsRequest struct {
	Limit  int `form:"limit" binding:"omitempty,min=1,max=100"`
	Offset int `form:"offset" binding:"omitempty,min=0"`
}
