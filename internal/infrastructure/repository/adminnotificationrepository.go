package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

type AdminNotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewAdminNotificationRepository(db *gorm.DB) notification.AdminNotificationRepository {
	return &AdminNotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

// Create inserts a new fan-out row. Duplicate-key failures from the
// (admin_id, ticket_id) unique index are returned unwrapped so callers can
// detect the lost race and re-read.
func (r *AdminNotificationRepositoryImpl) Create(ctx context.Context, n *notification.AdminNotification) error {
	model := r.mapper.AdminToModel(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return err
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *AdminNotificationRepositoryImpl) Update(ctx context.Context, n *notification.AdminNotification) error {
	model := r.mapper.AdminToModel(n)

	result := r.db.WithContext(ctx).Model(&models.AdminNotificationModel{}).
		Where("id = ?", model.ID).
		Select("user_id", "title", "message", "is_read", "email_sent").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update notification: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}

func (r *AdminNotificationRepositoryImpl) FindByAdminAndTicket(ctx context.Context, adminID, ticketID uint) (*notification.AdminNotification, error) {
	var model models.AdminNotificationModel

	err := r.db.WithContext(ctx).
		Where("admin_id = ? AND ticket_id = ?", adminID, ticketID).
		First(&model).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get notification by admin and ticket: %w", err)
	}

	entity, err := r.mapper.AdminToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map notification model to entity: %w", err)
	}

	return entity, nil
}

func (r *AdminNotificationRepositoryImpl) MarkEmailSent(ctx context.Context, id uint) error {
	result := r.db.WithContext(ctx).Model(&models.AdminNotificationModel{}).
		Where("id = ?", id).
		UpdateColumn("email_sent", true)
	if result.Error != nil {
		return fmt.Errorf("failed to mark email sent: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("notification not found")
	}

	return nil
}
