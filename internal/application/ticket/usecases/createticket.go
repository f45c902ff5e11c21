package usecases

import (
	"context"
	"fmt"
	"time"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
	"github.com/helpdesk-inc/helpdesk/internal/shared/errors"
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

type CreateTicketCommand struct {
	Title        string
	Description  string
	ImageUserURL *string
	CreatorID    uint
}

type CreateTicketResult struct {
	TicketID  uint
	Category  *string
	Status    string
	CreatedAt time.Time
}

type CreateTicketUseCase struct {
	ticketRepo     ticket.TicketRepository
	userRepo       user.Repository
	adminNotifRepo notification.AdminNotificationRepository
	classifier     Classifier
	emailSender    TicketEmailSender
	logger         logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.TicketRepository,
	userRepo user.Repository,
	adminNotifRepo notification.AdminNotificationRepository,
	classifier Classifier,
	emailSender TicketEmailSender,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:     ticketRepo,
		userRepo:       userRepo,
		adminNotifRepo: adminNotifRepo,
		classifier:     classifier,
		emailSender:    emailSender,
		logger:         logger,
	}
}

func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "title", cmd.Title, "creator_id", cmd.CreatorID)

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	category := uc.classify(ctx, cmd.Title+" "+cmd.Description)

	newTicket, err := ticket.NewTicket(cmd.CreatorID, cmd.Title, cmd.Description, category, cmd.ImageUserURL)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created", "ticket_id", newTicket.ID(), "category", newTicket.Category())

	// Admin fan-out is best-effort: a notification or email failure must not
	// fail the creation response.
	uc.NotifyAdmins(ctx, newTicket)

	return &CreateTicketResult{
		TicketID:  newTicket.ID(),
		Category:  newTicket.Category(),
		Status:    newTicket.Status().String(),
		CreatedAt: newTicket.CreatedAt(),
	}, nil
}

// classify asks the NLP service for a category. Any failure degrades to a nil
// category; classification never blocks ticket creation.
func (uc *CreateTicketUseCase) classify(ctx context.Context, text string) *string {
	category, err := uc.classifier.Classify(ctx, text)
	if err != nil {
		uc.logger.Warnw("classification failed, continuing without category", "error", err)
		return nil
	}
	if category == "" {
		return nil
	}
	return &category
}

// NotifyAdmins runs the per-admin notification fan-out for a created ticket.
// It upserts one AdminNotification per (admin, ticket) and attempts an email
// for each row whose EmailSent flag is still false. Re-running it for the
// same ticket never produces duplicate rows or duplicate emails; a failure
// for one admin does not affect the others.
func (uc *CreateTicketUseCase) NotifyAdmins(ctx context.Context, t *ticket.Ticket) {
	creator, err := uc.userRepo.FindByID(ctx, t.UserID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket creator for fan-out", "ticket_id", t.ID(), "error", err)
		return
	}

	admins, err := uc.userRepo.ListAdmins(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list admins for fan-out", "ticket_id", t.ID(), "error", err)
		return
	}

	message := fmt.Sprintf("New ticket from %s", creator.Name())

	for _, admin := range admins {
		if err := uc.notifyAdmin(ctx, admin, t, creator, message); err != nil {
			uc.logger.Errorw("admin notification failed",
				"admin_id", admin.ID(), "ticket_id", t.ID(), "error", err)
		}
	}

	uc.logger.Infow("notifications processed", "ticket_id", t.ID(), "admins", len(admins))
}

func (uc *CreateTicketUseCase) notifyAdmin(ctx context.Context, admin *user.User, t *ticket.Ticket, creator *user.User, message string) error {
	existing, err := uc.adminNotifRepo.FindByAdminAndTicket(ctx, admin.ID(), t.ID())
	if err != nil {
		return fmt.Errorf("failed to look up notification: %w", err)
	}

	var notif *notification.AdminNotification
	if existing != nil {
		// Email already delivered for this pair: nothing left to do.
		if existing.EmailSent() {
			return nil
		}
		existing.Refresh(creator.ID(), t.Title(), message)
		if err := uc.adminNotifRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to refresh notification: %w", err)
		}
		notif = existing
	} else {
		created, err := notification.NewAdminNotification(admin.ID(), t.ID(), creator.ID(), t.Title(), message)
		if err != nil {
			return err
		}
		if err := uc.adminNotifRepo.Create(ctx, created); err != nil {
			if !errors.IsDuplicateError(err) {
				return fmt.Errorf("failed to create notification: %w", err)
			}
			// Lost the unique-index race to a concurrent fan-out; re-read
			// the winner's row and continue from its state.
			created, err = uc.adminNotifRepo.FindByAdminAndTicket(ctx, admin.ID(), t.ID())
			if err != nil || created == nil {
				return fmt.Errorf("failed to re-read notification after duplicate: %w", err)
			}
			if created.EmailSent() {
				return nil
			}
		}
		notif = created
	}

	division := ""
	if creator.Division() != nil {
		division = *creator.Division()
	}

	if err := uc.emailSender.SendTicketCreatedEmail(admin.Email(), admin.Name(), t.Title(), creator.Name(), division, t.ID()); err != nil {
		// Row stays with email_sent=false; a later fan-out run may retry.
		uc.logger.Warnw("notification email failed",
			"admin_id", admin.ID(), "ticket_id", t.ID(), "error", err)
		return nil
	}

	if err := uc.adminNotifRepo.MarkEmailSent(ctx, notif.ID()); err != nil {
		return fmt.Errorf("failed to mark email sent: %w", err)
	}

	return nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}
	if cmd.CreatorID == 0 {
		return errors.NewValidationError("creator ID is required")
	}
	return nil
}
