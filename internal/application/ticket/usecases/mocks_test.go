package usecases

import (
	"context"

	"github.com/helpdesk-inc/helpdesk/internal/domain/notification"
	"github.com/helpdesk-inc/helpdesk/internal/domain/ticket"
	"github.com/helpdesk-inc/helpdesk/internal/domain/user"
)

type mockTicketRepository struct {
	SaveFunc           func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc         func(ctx context.Context, t *ticket.Ticket) error
	FindByIDFunc       func(ctx context.Context, id uint) (*ticket.Ticket, error)
	ListWithOwnerFunc  func(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TicketWithOwner, error)
	ListWithImagesFunc func(ctx context.Context) ([]ticket.TicketImageRow, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListWithOwner(ctx context.Context, filter ticket.TicketFilter) ([]ticket.TicketWithOwner, error) {
	if m.ListWithOwnerFunc != nil {
		return m.ListWithOwnerFunc(ctx, filter)
	}
	return nil, nil
}

func (m *mockTicketRepository) ListWithImages(ctx context.Context) ([]ticket.TicketImageRow, error) {
	if m.ListWithImagesFunc != nil {
		return m.ListWithImagesFunc(ctx)
	}
	return nil, nil
}

type mockUserRepository struct {
	SaveFunc          func(ctx context.Context, u *user.User) error
	FindByIDFunc      func(ctx context.Context, id uint) (*user.User, error)
	FindByEmailFunc   func(ctx context.Context, email string) (*user.User, error)
	ExistsByEmailFunc func(ctx context.Context, email string) (bool, error)
	ListAdminsFunc    func(ctx context.Context) ([]*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, id uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	if m.ExistsByEmailFunc != nil {
		return m.ExistsByEmailFunc(ctx, email)
	}
	return false, nil
}

func (m *mockUserRepository) ListAdmins(ctx context.Context) ([]*user.User, error) {
	if m.ListAdminsFunc != nil {
		return m.ListAdminsFunc(ctx)
	}
	return nil, nil
}

type mockAdminNotificationRepository struct {
	CreateFunc               func(ctx context.Context, n *notification.AdminNotification) error
	UpdateFunc               func(ctx context.Context, n *notification.AdminNotification) error
	FindByAdminAndTicketFunc func(ctx context.Context, adminID, ticketID uint) (*notification.AdminNotification, error)
	MarkEmailSentFunc        func(ctx context.Context, id uint) error
}

func (m *mockAdminNotificationRepository) Create(ctx context.Context, n *notification.AdminNotification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockAdminNotificationRepository) Update(ctx context.Context, n *notification.AdminNotification) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, n)
	}
	return nil
}

func (m *mockAdminNotificationRepository) FindByAdminAndTicket(ctx context.Context, adminID, ticketID uint) (*notification.AdminNotification, error) {
	if m.FindByAdminAndTicketFunc != nil {
		return m.FindByAdminAndTicketFunc(ctx, adminID, ticketID)
	}
	return nil, nil
}

func (m *mockAdminNotificationRepository) MarkEmailSent(ctx context.Context, id uint) error {
	if m.MarkEmailSentFunc != nil {
		return m.MarkEmailSentFunc(ctx, id)
	}
	return nil
}

type mockUserNotificationRepository struct {
	CreateFunc       func(ctx context.Context, n *notification.UserNotification) error
	ListByUserIDFunc func(ctx context.Context, userID uint, limit, offset int) ([]*notification.UserNotification, int64, error)
}

func (m *mockUserNotificationRepository) Create(ctx context.Context, n *notification.UserNotification) error {
	if m.CreateFunc != nil {
		return m.CreateFunc(ctx, n)
	}
	return nil
}

func (m *mockUserNotificationRepository) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.UserNotification, int64, error) {
	if m.ListByUserIDFunc != nil {
		return m.ListByUserIDFunc(ctx, userID, limit, offset)
	}
	return nil, 0, nil
}

type mockClassifier struct {
	ClassifyFunc func(ctx context.Context, text string) (string, error)
}

func (m *mockClassifier) Classify(ctx context.Context, text string) (string, error) {
	if m.ClassifyFunc != nil {
		return m.ClassifyFunc(ctx, text)
	}
	return "", nil
}

type mockEmailSender struct {
	SendTicketCreatedEmailFunc func(to, adminName, ticketTitle, userName, userDivision string, ticketID uint) error
}

func (m *mockEmailSender) SendTicketCreatedEmail(to, adminName, ticketTitle, userName, userDivision string, ticketID uint) error {
	if m.SendTicketCreatedEmailFunc != nil {
		return m.SendTicketCreatedEmailFunc(to, adminName, ticketTitle, userName, userDivision, ticketID)
	}
	return nil
}
