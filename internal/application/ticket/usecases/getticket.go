package usecases

import (
	"context"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type GetTicketQuery struct {
	TicketID uint
	UserID   uint
	IsAdmin  bool
}

type GetTicketResult struct {
	ID                   uint       `json:"id"`
	UserID               uint       `json:"userId"`
	Title                string     `json:"title"`
	Description          string     `json:"description"`
	Category             *string    `json:"category"`
	Status               string     `json:"status"`
	AdminNotes           *string    `json:"adminNotes"`
	ImageUserURL         *string    `json:"imageUserUrl"`
	ImageAdminURL        *string    `json:"imageAdminUrl"`
	ImageAdminUploadedAt *time.Time `json:"imageAdminUploadedAt"`
	CreatedAt            time.Time  `json:"createdAt"`
	OwnerName            string     `json:"name"`
	OwnerEmail           string     `json:"email"`
}

type GetTicketUseCase struct {
	ticketRepo ticket.TicketRepository
	userRepo   user.Repository
	logger     logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo: ticketRepo,
		userRepo:   userRepo,
		logger:     logger,
	}
}

func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error) {
	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	if !t.CanBeViewedBy(query.UserID, query.IsAdmin) {
		uc.logger.Warnw("ticket access denied", "ticket_id", query.TicketID, "user_id", query.UserID)
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	owner, err := uc.userRepo.FindByID(ctx, t.UserID())
	if err != nil {
		return nil, err
	}

	return &GetTicketResult{
		ID:                   t.ID(),
		UserID:               t.UserID(),
		Title:                t.Title(),
		Description:          t.Description(),
		Category:             t.Category(),
		Status:               t.Status().String(),
		AdminNotes:           t.AdminNotes(),
		ImageUserURL:         t.ImageUserURL(),
		ImageAdminURL:        t.ImageAdminURL(),
		ImageAdminUploadedAt: t.ImageAdminUploadedAt(),
		CreatedAt:            t.CreatedAt(),
		OwnerName:            owner.Name(),
		OwnerEmail:           owner.Email(),
	}, nil
}
