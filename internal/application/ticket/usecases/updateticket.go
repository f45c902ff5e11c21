package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	notifvo "github.com/helpdesk-inc/helpdesk/internal/domain/notification/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	ticketvo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

// UpdateTicketCommand carries a partial admin update. Nil pointer fields were
// not supplied. ImageAdminURLPresent distinguishes an absent imageAdminUrl
// from an explicit null (which clears the image).
type UpdateTicketCommand struct {
	TicketID             uint
	Status               *string
	Category             *string
	AdminNotes           *string
	ImageAdminURL        *string
	ImageAdminURLPresent bool
}

type UpdateTicketResult struct {
	TicketID  uint
	Status    string
	UpdatedAt time.Time
}

type UpdateTicketUseCase struct {
	ticketRepo    ticket.TicketRepository
	userNotifRepo notification.UserNotificationRepository
	logger        logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userNotifRepo notification.UserNotificationRepository,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo:    ticketRepo,
		userNotifRepo: userNotifRepo,
		logger:        logger,
	}
}

func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID)

	if !uc.hasRecognizedField(cmd) {
		return nil, errors.NewValidationError("no updates provided")
	}

	existing, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, errors.NewNotFoundError("ticket not found")
	}

	// At most one owner notification is derived per request. Precedence:
	// status change, then admin notes, then admin image; fields checked
	// later still update the ticket, just silently.
	var notifMessage string
	var notifType notifvo.UserNotificationType

	oldStatus := existing.Status()

	if cmd.Status != nil {
		newStatus := ticketvo.TicketStatus(*cmd.Status)
		if !newStatus.IsValid() {
			return nil, errors.NewValidationError(fmt.Sprintf("invalid status: %s", *cmd.Status))
		}
		if newStatus != oldStatus {
			if err := existing.ChangeStatus(newStatus); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			notifMessage = fmt.Sprintf("An admin changed your ticket status to %q", newStatus.Label())
			if newStatus.IsResolved() {
				notifType = notifvo.TypeTicketResolved
			} else {
				notifType = notifvo.TypeStatusUpdate
			}
		}
	}

	if cmd.Category != nil {
		if err := existing.SetCategory(*cmd.Category); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AdminNotes != nil {
		existing.SetAdminNotes(*cmd.AdminNotes)
		if notifMessage == "" {
			notifMessage = "An admin added a note to your ticket"
			notifType = notifvo.TypeAdminNote
		}
	}

	if cmd.ImageAdminURLPresent {
		if cmd.ImageAdminURL == nil {
			// Explicit null clears the image and its timestamp, silently.
			existing.ClearAdminImage()
		} else {
			if err := existing.SetAdminImage(*cmd.ImageAdminURL); err != nil {
				return nil, errors.NewValidationError(err.Error())
			}
			if notifMessage == "" {
				notifMessage = "An admin uploaded a resolution image for your ticket"
				notifType = notifvo.TypeAdminImage
			}
		}
	}

	if err := uc.ticketRepo.Update(ctx, existing); err != nil {
		uc.logger.Errorw("failed to update ticket", "ticket_id", cmd.TicketID, "error", err)
		return nil, err
	}

	if notifMessage != "" {
		uc.notifyOwner(ctx, existing, notifMessage, notifType)
	}

	uc.logger.Infow("ticket updated", "ticket_id", existing.ID(), "status", existing.Status().String())

	return &UpdateTicketResult{
		TicketID:  existing.ID(),
		Status:    existing.Status().String(),
		UpdatedAt: existing.UpdatedAt(),
	}, nil
}

// notifyOwner inserts the owner-facing notification. Best-effort: a failure
// is logged and never rolls back the ticket mutation.
func (uc *UpdateTicketUseCase) notifyOwner(ctx context.Context, t *ticket.Ticket, message string, notifType notifvo.UserNotificationType) {
	n, err := notification.NewUserNotification(t.UserID(), t.ID(), t.Title(), message, notifType)
	if err != nil {
		uc.logger.Errorw("failed to build user notification", "ticket_id", t.ID(), "error", err)
		return
	}
	if err := uc.userNotifRepo.Create(ctx, n); err != nil {
		uc.logger.Errorw("failed to create user notification", "ticket_id", t.ID(), "error", err)
	}
}

func (uc *UpdateTicketUseCase) hasRecognizedField(cmd UpdateTicketCommand) bool {
	return cmd.Status != nil || cmd.Category != nil || cmd.AdminNotes != nil || cmd.ImageAdminURLPresent
}
