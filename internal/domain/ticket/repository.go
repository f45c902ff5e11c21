package ticket

import (
	"context"
	"time"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
)

// TicketFilter narrows ticket listings. Zero values mean "no filter".
type TicketFilter struct {
	UserID uint
	Status *vo.TicketStatus
}

// TicketWithOwner is a read model for listings and reports: a ticket row
// joined with its owner's display fields.
type TicketWithOwner struct {
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
	OwnerDivision        *string    `json:"division"`
}

// TicketImageRow is the read model for the admin image gallery.
type TicketImageRow struct {
	ID            uint    `json:"id"`
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Status        string  `json:"status"`
	ImageUserURL  *string `json:"imageUserUrl"`
	ImageAdminURL *string `json:"imageAdminUrl"`
	OwnerName     string  `json:"name"`
}

type TicketRepository interface {
	Save(ctx context.Context, t *Ticket) error
	Update(ctx context.Context, t *Ticket) error
	FindByID(ctx context.Context, id uint) (*Ticket, error)
	// ListWithOwner returns tickets joined with owner name/email/division,
	// ordered by creation time descending.
	ListWithOwner(ctx context.Context, filter TicketFilter) ([]TicketWithOwner, error)
	// ListWithImages returns tickets carrying a user or admin image, newest first.
	ListWithImages(ctx context.Context) ([]TicketImageRow, error)
}
