package mappers

import (
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:                   t.ID(),
		UserID:               t.UserID(),
		Title:                t.Title(),
		Description:          t.Description(),
		Category:             t.Category(),
		Status:               t.Status().String(),
		AdminNotes:           t.AdminNotes(),
		ImageUserURL:         t.ImageUserURL(),
		ImageAdminURL:        t.ImageAdminURL(),
		ImageAdminUploadedAt: timeToMilli(t.ImageAdminUploadedAt()),
		CreatedAt:            t.CreatedAt().UnixMilli(),
		UpdatedAt:            t.UpdatedAt().UnixMilli(),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	return ticket.ReconstructTicket(
		model.ID,
		model.UserID,
		model.Title,
		model.Description,
		model.Category,
		vo.TicketStatus(model.Status),
		model.AdminNotes,
		model.ImageUserURL,
		model.ImageAdminURL,
		milliToTime(model.ImageAdminUploadedAt),
		time.UnixMilli(model.CreatedAt),
		time.UnixMilli(model.UpdatedAt),
	)
}

func timeToMilli(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}

func milliToTime(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}
