package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/mappers"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
)

type TicketRepositoryImpl struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) ticket.TicketRepository {
	return &TicketRepositoryImpl{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepositoryImpl) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return fmt.Errorf("failed to set ticket ID: %w", err)
	}

	return nil
}

func (r *TicketRepositoryImpl) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)

	// Save with a column list so nil pointers clear their columns instead of
	// being skipped as zero values.
	result := r.db.WithContext(ctx).Model(&models.TicketModel{}).
		Where("id = ?", model.ID).
		Select("category", "status", "admin_notes", "image_admin_url", "image_admin_uploaded_at", "updated_at").
		Updates(model)
	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}

	return nil
}

func (r *TicketRepositoryImpl) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel

	if err := r.db.WithContext(ctx).First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to get ticket by ID: %w", err)
	}

	entity, err := r.mapper.ToDomain(&model)
	if err != nil {
		return nil, fmt.Errorf("failed to map ticket model to entity: %w", err)
	}

	return entity, nil
}

func (r *TicketRepositoryImpl) ListWithOwner(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TicketWithOwner, error) {
	var rows []ticketOwnerRow

	query := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.id, tickets.user_id, tickets.title, tickets.description, tickets.category, tickets.status, tickets.admin_notes, tickets.image_user_url, tickets.image_admin_url, tickets.image_admin_uploaded_at, tickets.created_at, u.name AS owner_name, u.email AS owner_email, u.division AS owner_division").
		Joins("JOIN users u ON tickets.user_id = u.id").
		Order("tickets.created_at DESC")

	if filter.UserID != 0 {
		query = query.Where("tickets.user_id = ?", filter.UserID)
	}
	if filter.Status != nil {
		query = query.Where("tickets.status = ?", filter.Status.String())
	}

	if err := query.Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("failed to list tickets: %w", err)
	}

	result := make([]ticket.TicketWithOwner, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.toReadModel())
	}

	return result, nil
}

func (r *TicketRepositoryImpl) ListWithImages(ctx context.Context) ([]ticket.TicketImageRow, error) {
	var rows []ticket.TicketImageRow

	err := r.db.WithContext(ctx).
		Table("tickets").
		Select("tickets.id, tickets.title, tickets.description, tickets.status, tickets.image_user_url, tickets.image_admin_url, u.name AS owner_name").
		Joins("JOIN users u ON tickets.user_id = u.id").
		Where("tickets.image_user_url IS NOT NULL OR tickets.image_admin_url IS NOT NULL").
		Order("tickets.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list tickets with images: %w", err)
	}

	return rows, nil
}
