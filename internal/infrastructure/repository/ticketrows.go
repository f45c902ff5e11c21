package repository

import (
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
)

// ticketOwnerRow is the raw scan target for the ticket/owner join. Timestamps
// come back as Unix milliseconds and are converted at the boundary.
type ticketOwnerRow struct {
	ID                   uint
	UserID               uint
	Title                string
	Description          string
	Category             *string
	Status               string
	AdminNotes           *string
	ImageUserURL         *string
	ImageAdminURL        *string
	ImageAdminUploadedAt *int64
	CreatedAt            int64
	OwnerName            string
	OwnerEmail           string
	OwnerDivision        *string
}

func (row ticketOwnerRow) toReadModel() ticket.TicketWithOwner {
	var uploadedAt *time.Time
	if row.ImageAdminUploadedAt != nil {
		t := time.UnixMilli(*row.ImageAdminUploadedAt)
		uploadedAt = &t
	}

	return ticket.TicketWithOwner{
		ID:                   row.ID,
		UserID:               row.UserID,
		Title:                row.Title,
		Description:          row.Description,
		Category:             row.Category,
		Status:               row.Status,
		AdminNotes:           row.AdminNotes,
		ImageUserURL:         row.ImageUserURL,
		ImageAdminURL:        row.ImageAdminURL,
		ImageAdminUploadedAt: uploadedAt,
		CreatedAt:            time.UnixMilli(row.CreatedAt),
		OwnerName:            row.OwnerName,
		OwnerEmail:           row.OwnerEmail,
		OwnerDivision:        row.OwnerDivision,
	}
}
