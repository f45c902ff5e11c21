package email

import (
	"github.com/helpdesk-inc/helpdesk/internal/shared/logger"
)

// NoopEmailService is used when email delivery is disabled. Sends succeed
// without doing anything, so notification rows are still marked as sent.
type NoopEmailService struct {
	logger logger.Interface
}

func NewNoopEmailService(log logger.Interface) *NoopEmailService {
	return &NoopEmailService{logger: log}
}

func (s *NoopEmailService) SendTicketCreatedEmail(to, adminName, ticketTitle, userName, userDivision string, ticketID uint) error {
	s.logger.Debugw("email delivery disabled, skipping ticket notification",
		"to", to,
		"ticket_id", ticketID,
	)
	return nil
}
