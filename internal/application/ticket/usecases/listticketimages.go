package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type ListTicketImagesQuery struct{}

type ListTicketImagesResult struct {
	Tickets []ticket.TicketImageRow
}

// ListTicketImagesUseCase backs the admin image gallery: every ticket that
// carries a user-submitted or admin-resolution image.
type ListTicketImagesUseCase struct {
	ticketRepo ticket.TicketRepository
	logger     logger.Interface
}

func NewListTicketImagesUseCase(ticketRepo ticket.TicketRepository, logger logger.Interface) *ListTicketImagesUseCase {
	return &ListTicketImagesUseCase{
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

func (uc *ListTicketImagesUseCase) Execute(ctx context.Context, _ ListTicketImagesQuery) (*ListTicketImagesResult, error) {
	rows, err := uc.ticketRepo.ListWithImages(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list ticket images", "error", err)
		return nil, err
	}
	return &ListTicketImagesResult{Tickets: rows}, nil
}
