package models

// AdminNotificationModel carries the unique index that closes the
// check-then-insert race in the creation fan-out: two concurrent inserts for
// the same (admin, ticket) pair cannot both succeed.
type AdminNotificationModel struct {
	ID        uint   `gorm:"primaryKey"`
	AdminID   uint   `gorm:"not null;uniqueIndex:uq_admin_ticket"`
	TicketID  uint   `gorm:"not null;uniqueIndex:uq_admin_ticket"`
	UserID    uint   `gorm:"not null;index"`
	Title     string `gorm:"size:200;not null"`
	Message   string `gorm:"size:500;not null"`
	IsRead    bool   `gorm:"not null;default:false"`
	EmailSent bool   `gorm:"not null;default:false"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (AdminNotificationModel) TableName() string {
	return "notifications"
}

type UserNotificationModel struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	TicketID    uint   `gorm:"not null;index"`
	TicketTitle string `gorm:"size:200;not null"`
	Message     string `gorm:"size:500;not null"`
	Type        string `gorm:"size:30;not null"`
	IsRead      bool   `gorm:"not null;default:false"`
	CreatedAt   int64  `gorm:"autoCreateTime:milli;not null;index"`
}

func (UserNotificationModel) TableName() string {
	return "user_notifications"
}
