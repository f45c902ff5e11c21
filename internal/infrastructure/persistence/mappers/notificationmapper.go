package mappers

import (
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/notification/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
)

type NotificationMapper interface {
	AdminToModel(n *notification.AdminNotification) *models.AdminNotificationModel
	AdminToDomain(model *models.AdminNotificationModel) (*notification.AdminNotification, error)
	UserToModel(n *notification.UserNotification) *models.UserNotificationModel
	UserToDomain(model *models.UserNotificationModel) (*notification.UserNotification, error)
}

type NotificationMapperImpl struct{}

func NewNotificationMapper() NotificationMapper {
	return &NotificationMapperImpl{}
}

func (m *NotificationMapperImpl) AdminToModel(n *notification.AdminNotification) *models.AdminNotificationModel {
	return &models.AdminNotificationModel{
		ID:        n.ID(),
		AdminID:   n.AdminID(),
		TicketID:  n.TicketID(),
		UserID:    n.UserID(),
		Title:     n.Title(),
		Message:   n.Message(),
		IsRead:    n.IsRead(),
		EmailSent: n.EmailSent(),
		CreatedAt: n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) AdminToDomain(model *models.AdminNotificationModel) (*notification.AdminNotification, error) {
	return notification.ReconstructAdminNotification(
		model.ID,
		model.AdminID,
		model.TicketID,
		model.UserID,
		model.Title,
		model.Message,
		model.IsRead,
		model.EmailSent,
		time.UnixMilli(model.CreatedAt),
	)
}

func (m *NotificationMapperImpl) UserToModel(n *notification.UserNotification) *models.UserNotificationModel {
	return &models.UserNotificationModel{
		ID:          n.ID(),
		UserID:      n.UserID(),
		TicketID:    n.TicketID(),
		TicketTitle: n.TicketTitle(),
		Message:     n.Message(),
		Type:        n.Type().String(),
		IsRead:      n.IsRead(),
		CreatedAt:   n.CreatedAt().UnixMilli(),
	}
}

func (m *NotificationMapperImpl) UserToDomain(model *models.UserNotificationModel) (*notification.UserNotification, error) {
	return notification.ReconstructUserNotification(
		model.ID,
		model.UserID,
		model.TicketID,
		model.TicketTitle,
		model.Message,
		vo.UserNotificationType(model.Type),
		model.IsRead,
		time.UnixMilli(model.CreatedAt),
	)
}
