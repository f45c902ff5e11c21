package upload

import (
	"net/http"
	"path"

	"github.com/gin-gonic/gin"

	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/storage"
	"github.com/helpdesk-inc/helpdesk/internal/shared/authorization"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils"
)

type UploadHandler struct {
	storage *storage.LocalStorage
	logger  logger.Interface
}

func NewUploadHandler(store *storage.LocalStorage) *UploadHandler {
	return &UploadHandler{
		storage: store,
		logger:  logger.NewLogger(),
	}
}

// Upload handles POST /upload. The "type" form field selects the destination:
// user_report for ticket screenshots, admin_resolution (admins only) for
// resolution images.
func (h *UploadHandler) Upload(c *gin.Context) {
	kind := storage.UploadKind(c.PostForm("type"))
	if kind == "" {
		kind = storage.KindUserReport
	}
	if !kind.IsValid() {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid upload type")
		return
	}

	if kind == storage.KindAdminResolution {
		role := authorization.UserRole(c.GetString("user_role"))
		if !role.IsAdmin() {
			utils.ErrorResponse(c, http.StatusForbidden, "admin access required")
			return
		}
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.logger.Warnw("failed to get uploaded file", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "file is required")
		return
	}
	defer file.Close()

	url, err := h.storage.Save(kind, header.Filename, header.Size, file)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	h.logger.Infow("file uploaded",
		"type", string(kind),
		"size", header.Size,
		"user_id", c.GetUint("user_id"))

	utils.CreatedResponse(c, gin.H{
		"url":      url,
		"filename": path.Base(url),
	}, "File uploaded successfully")
}
