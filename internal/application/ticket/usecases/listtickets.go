package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type ListTicketsQuery struct {
	UserID  uint
	IsAdmin bool
	Status  *string
}

type ListTicketsResult struct {
	Tickets []ticket.TicketWithOwner
}

type ListTicketsUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketsUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter := ticket.TicketFilter{}

	// Admins see every ticket; regular users only their own.
	if !query.IsAdmin {
		filter.UserID = query.UserID
	}

	if query.Status != nil && *query.Status != "" && *query.Status != "all" {
		status := vo.TicketStatus(*query.Status)
		if !status.IsValid() {
			return nil, errors.NewValidationError("invalid status filter: " + *query.Status)
		}
		filter.Status = &status
	}

	rows, err := uc.ticketRepo.ListWithOwner(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{Tickets: rows}, nil
}
