package usecases

import (
	"context"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

const (
	defaultNotificationLimit = 20
	maxNotificationLimit     = 100
)

type ListNotificationsQuery struct {
	UserID uint
	Limit  int
	Offset int
}

type NotificationDTO struct {
	ID          uint      `json:"id"`
	TicketID    uint      `json:"ticketId"`
	TicketTitle string    `json:"ticketTitle"`
	Type        string    `json:"type"`
	Message     string    `json:"message"`
	IsRead      bool      `json:"isRead"`
	CreatedAt   time.Time `json:"createdAt"`
}

type ListNotificationsResult struct {
	Notifications []NotificationDTO `json:"notifications"`
	Total         int64             `json:"total"`
}

type ListNotificationsUseCase struct {
	userNotifRepo notification.UserNotificationRepository
	logger        logger.Interface
}

func NewListNotificationsUseCase(
	userNotifRepo notification.UserNotificationRepository,
	logger logger.Interface,
) *ListNotificationsUseCase {
	return &ListNotificationsUseCase{
		userNotifRepo: userNotifRepo,
		logger:        logger,
	}
}

func (uc *ListNotificationsUseCase) Execute(ctx context.Context, query ListNotificationsQuery) (*ListNotificationsResult, error) {
	limit := query.Limit
	if limit <= 0 {
		limit = defaultNotificationLimit
	}
	if limit > maxNotificationLimit {
		limit = maxNotificationLimit
	}

	offset := query.Offset
	if offset < 0 {
		offset = 0
	}

	items, total, err := uc.userNotifRepo.ListByUserID(ctx, query.UserID, limit, offset)
	if err != nil {
		uc.logger.Errorw("failed to list user notifications", "user_id", query.UserID, "error", err)
		return nil, err
	}

	dtos := make([]NotificationDTO, 0, len(items))
	for _, n := range items {
		dtos = append(dtos, NotificationDTO{
			ID:          n.ID(),
			TicketID:    n.TicketID(),
			TicketTitle: n.TicketTitle(),
			Type:        n.Type().String(),
			Message:     n.Message(),
			IsRead:      n.IsRead(),
			CreatedAt:   n.CreatedAt(),
		})
	}

	return &ListNotificationsResult{
		Notifications: dtos,
		Total:         total,
	}, nil
}
