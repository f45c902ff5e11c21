package valueobjects

// UserNotificationType classifies the owner-facing notification created when
// an admin updates a ticket.
type UserNotificationType string

const (
	TypeStatusUpdate   UserNotificationType = "status_update"
	TypeTicketResolved UserNotificationType = "ticket_resolved"
	TypeAdminNote      UserNotificationType = "admin_note"
	TypeAdminImage     UserNotificationType = "admin_image"
)

var validUserNotificationTypes = map[UserNotificationType]bool{
	TypeStatusUpdate:   true,
	TypeTicketResolved: true,
	TypeAdminNote:      true,
	TypeAdminImage:     true,
}

func (t UserNotificationType) String() string {
	return string(t)
}

func (t UserNotificationType) IsValid() bool {
	return validUserNotificationTypes[t]
}
