package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
)

type UserNotificationRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.NotificationMapper
}

func NewUserNotificationRepository(db *gorm.DB) notification.UserNotificationRepository {
	return &UserNotificationRepositoryImpl{
		db:     db,
		mapper: mappers.NewNotificationMapper(),
	}
}

func (r *UserNotificationRepositoryImpl) Create(ctx context.Context, n *notification.UserNotification) error {
	model := r.mapper.UserToModel(n)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create user notification: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set notification ID: %w", err)
	}

	return nil
}

func (r *UserNotificationRepositoryImpl) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.UserNotification, int64, error) {
	var total int64
	err := r.db.WithContext(ctx).Model(&models.UserNotificationModel{}).
		Where("user_id = ?", userID).
		Count(&total).Error
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count user notifications: %w", err)
	}

	var modelList []*models.UserNotificationModel
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC")

	if limit > 0 {
		query = query.Limit(limit)
	}
	if offset > 0 {
		query = query.Offset(offset)
	}

	if err := query.Find(&modelList).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list user notifications: %w", err)
	}

	entities := make([]*notification.UserNotification, 0, len(modelList))
	for _, model := range modelList {
		entity, err := r.mapper.UserToDomain(model)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to map notification model to entity: %w", err)
		}
		entities = append(entities, entity)
	}

	return entities, total, nil
}
