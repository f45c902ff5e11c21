package migration

import (
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
)

func AutoMigrateModels() []interface{} {
	return []interface{}{
		&models.UserModel{},
		&models.TicketModel{},
		&models.AdminNotificationModel{},
		&models.UserNotificationModel{},
	}
}
