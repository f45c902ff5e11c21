package notification

import (
	"fmt"
	"time"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/notification/valueobjects"
)

// UserNotification informs a ticket's owner of an admin-side change. Rows are
// append-only: created at most once per qualifying admin update, never
// modified or deleted by this service.
type UserNotification struct {
	id               uint
	userID           uint
	ticketID         uint
	ticketTitle      string
	message          string
	notificationType vo.UserNotificationType
	isRead           bool
	createdAt        time.Time
}

func NewUserNotification(userID, ticketID uint, ticketTitle, message string, notificationType vo.UserNotificationType) (*UserNotification, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if len(ticketTitle) == 0 {
		return nil, fmt.Errorf("ticket title is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &UserNotification{
		userID:           userID,
		ticketID:         ticketID,
		ticketTitle:      ticketTitle,
		message:          message,
		notificationType: notificationType,
		createdAt:        time.Now(),
	}, nil
}

func ReconstructUserNotification(
	id uint,
	userID, ticketID uint,
	ticketTitle, message string,
	notificationType vo.UserNotificationType,
	isRead bool,
	createdAt time.Time,
) (*UserNotification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}
	if !notificationType.IsValid() {
		return nil, fmt.Errorf("invalid notification type")
	}

	return &UserNotification{
		id:               id,
		userID:           userID,
		ticketID:         ticketID,
		ticketTitle:      ticketTitle,
		message:          message,
		notificationType: notificationType,
		isRead:           isRead,
		createdAt:        createdAt,
	}, nil
}

func (n *UserNotification) ID() uint {
	return n.id
}

func (n *UserNotification) UserID() uint {
	return n.userID
}

func (n *UserNotification) TicketID() uint {
	return n.ticketID
}

func (n *UserNotification) TicketTitle() string {
	return n.ticketTitle
}

func (n *UserNotification) Message() string {
	return n.message
}

func (n *UserNotification) Type() vo.UserNotificationType {
	return n.notificationType
}

func (n *UserNotification) IsRead() bool {
	return n.isRead
}

func (n *UserNotification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *UserNotification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}
