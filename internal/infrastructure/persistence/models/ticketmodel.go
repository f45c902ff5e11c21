package models

type TicketModel struct {
	ID                   uint    `gorm:"primaryKey"`
	UserID               uint    `gorm:"not null;index"`
	Title                string  `gorm:"size:200;not null"`
	Description          string  `gorm:"type:text;not null"`
	Category             *string `gorm:"size:50;index"`
	Status               string  `gorm:"size:20;not null;index"`
	AdminNotes           *string `gorm:"type:text"`
	ImageUserURL         *string `gorm:"size:500"`
	ImageAdminURL        *string `gorm:"size:500"`
	ImageAdminUploadedAt *int64
	CreatedAt            int64 `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt            int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}
