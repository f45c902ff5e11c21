package models

type UserModel struct {
	ID              uint    `gorm:"primaryKey"`
	Name            string  `gorm:"size:100;not null"`
	Email           string  `gorm:"size:255;uniqueIndex;not null"`
	Password        string  `gorm:"size:255;not null"`
	Role            string  `gorm:"size:20;not null;index"`
	Division        *string `gorm:"size:100"`
	ProfileImageURL *string `gorm:"size:500"`
	CreatedAt       int64   `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt       int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (UserModel) TableName() string {
	return "users"
}
