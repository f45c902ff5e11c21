package notification

import (
	"fmt"
	"time"
)

// AdminNotification tracks whether a given admin has been informed (and
// emailed) about a given ticket. At most one row exists per (admin, ticket)
// pair; EmailSent only ever moves from false to true.
type AdminNotification struct {
	id        uint
	adminID   uint
	ticketID  uint
	userID    uint
	title     string
	message   string
	isRead    bool
	emailSent bool
	createdAt time.Time
}

func NewAdminNotification(adminID, ticketID, userID uint, title, message string) (*AdminNotification, error) {
	if adminID == 0 {
		return nil, fmt.Errorf("admin ID is required")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(message) == 0 {
		return nil, fmt.Errorf("message is required")
	}

	return &AdminNotification{
		adminID:   adminID,
		ticketID:  ticketID,
		userID:    userID,
		title:     title,
		message:   message,
		createdAt: time.Now(),
	}, nil
}

func ReconstructAdminNotification(
	id uint,
	adminID, ticketID, userID uint,
	title, message string,
	isRead, emailSent bool,
	createdAt time.Time,
) (*AdminNotification, error) {
	if id == 0 {
		return nil, fmt.Errorf("notification ID cannot be zero")
	}

	return &AdminNotification{
		id:        id,
		adminID:   adminID,
		ticketID:  ticketID,
		userID:    userID,
		title:     title,
		message:   message,
		isRead:    isRead,
		emailSent: emailSent,
		createdAt: createdAt,
	}, nil
}

func (n *AdminNotification) ID() uint {
	return n.id
}

func (n *AdminNotification) AdminID() uint {
	return n.adminID
}

func (n *AdminNotification) TicketID() uint {
	return n.ticketID
}

func (n *AdminNotification) UserID() uint {
	return n.userID
}

func (n *AdminNotification) Title() string {
	return n.title
}

func (n *AdminNotification) Message() string {
	return n.message
}

func (n *AdminNotification) IsRead() bool {
	return n.isRead
}

func (n *AdminNotification) EmailSent() bool {
	return n.emailSent
}

func (n *AdminNotification) CreatedAt() time.Time {
	return n.createdAt
}

func (n *AdminNotification) SetID(id uint) error {
	if n.id != 0 {
		return fmt.Errorf("notification ID already set")
	}
	if id == 0 {
		return fmt.Errorf("notification ID cannot be zero")
	}
	n.id = id
	return nil
}

// Refresh updates the title/message snapshot and resets the read flag. Used
// when fan-out runs again for a pending (not yet emailed) notification.
func (n *AdminNotification) Refresh(userID uint, title, message string) {
	n.userID = userID
	n.title = title
	n.message = message
	n.isRead = false
}

// MarkEmailSent records a confirmed delivery. The flag is monotonic: once set
// it cannot be cleared.
func (n *AdminNotification) MarkEmailSent() {
	n.emailSent = true
}

func (n *AdminNotification) MarkRead() {
	n.isRead = true
}
