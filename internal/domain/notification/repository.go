package notification

import "context"

type AdminNotificationRepository interface {
	Create(ctx context.Context, n *AdminNotification) error
	Update(ctx context.Context, n *AdminNotification) error
	// FindByAdminAndTicket returns the notification for the pair, or nil
	// (with nil error) when none exists.
	FindByAdminAndTicket(ctx context.Context, adminID, ticketID uint) (*AdminNotification, error)
	MarkEmailSent(ctx context.Context, id uint) error
}

type UserNotificationRepository interface {
	Create(ctx context.Context, n *UserNotification) error
	ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*UserNotification, int64, error)
}
