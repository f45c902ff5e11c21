package usecases

import (
	"context"
)

// Classifier is the external NLP category service. Implementations must
// confine their own timeouts; a failure here never blocks ticket creation.
type Classifier interface {
	Classify(ctx context.Context, text string) (string, error)
}

// TicketEmailSender delivers the new-ticket notification email to an admin.
type TicketEmailSender interface {
	SendTicketCreatedEmail(to, adminName, ticketTitle, userName, userDivision string, ticketID uint) error
}

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*GetTicketResult, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type ListTicketImagesExecutor interface {
	Execute(ctx context.Context, query ListTicketImagesQuery) (*ListTicketImagesResult, error)
}
