package ticket

import (
	"github.com/helpdesk-inc/helpdesk/internal/application/ticket/usecases"
	"github.com/helpdesk-inc/helpdesk/internal/shared/utils/jsonutil"
)

type CreateTicketRequest struct {
	Title        string  `json:"title" form:"title" binding:"required,max=200"`
	Description  string  `json:"description" form:"description" binding:"required,max=5000"`
	ImageUserURL *string `json:"imageUserUrl" form:"imageUserUrl"`
}

func (r CreateTicketRequest) ToCommand(creatorID uint) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Title:        r.Title,
		Description:  r.Description,
		ImageUserURL: r.ImageUserURL,
		CreatorID:    creatorID,
	}
}

// UpdateTicketRequest is a partial admin update. imageAdminUrl uses
// OptionalString so an explicit null (clear the image) can be told apart from
// an absent field.
type UpdateTicketRequest struct {
	Status        *string                 `json:"status" binding:"omitempty,ticketstatus"`
	Category      *string                 `json:"category" binding:"omitempty,max=50"`
	AdminNotes    *string                 `json:"adminNotes" binding:"omitempty,max=5000"`
	ImageAdminURL jsonutil.OptionalString `json:"imageAdminUrl"`
}

func (r UpdateTicketRequest) ToCommand(ticketID uint) usecases.UpdateTicketCommand {
	return usecases.UpdateTicketCommand{
		TicketID:             ticketID,
		Status:               r.Status,
		Category:             r.Category,
		AdminNotes:           r.AdminNotes,
		ImageAdminURL:        r.ImageAdminURL.Value,
		ImageAdminURLPresent: r.ImageAdminURL.Present,
	}
}

type ListTicketsRequest struct {
	Status *string `form:"status"`
}

func (r ListTicketsRequest) ToQuery(userID uint, isAdmin bool) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		UserID:  userID,
		IsAdmin: isAdmin,
		Status:  r.Status,
	}
}
