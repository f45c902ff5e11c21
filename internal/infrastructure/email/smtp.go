package email

import (
	"fmt"
	"time"

	"gopkg.in/gomail.v2"
)

type SMTPConfig struct {
	Host        string
	Port        int
	Username    string
	Password    string
	FromAddress string
	FromName    string
	BaseURL     string // Base URL for email links (e.g., "http://localhost:8080")
}

type SMTPEmailService struct {
	config SMTPConfig
	dialer *gomail.Dialer
}

func NewSMTPEmailService(config SMTPConfig) *SMTPEmailService {
	dialer := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)

	return &SMTPEmailService{
		config: config,
		dialer: dialer,
	}
}

// SendTicketCreatedEmail informs an admin that a new ticket needs triage.
func (s *SMTPEmailService) SendTicketCreatedEmail(to, adminName, ticketTitle, userName, userDivision string, ticketID uint) error {
	dashboardURL := fmt.Sprintf("%s/admin/tickets/%d", s.config.BaseURL, ticketID)
	if userDivision == "" {
		userDivision = "-"
	}

	subject := fmt.Sprintf("New Ticket: %s", ticketTitle)
	htmlBody := fmt.Sprintf(`
		<html>
		<body>
			<h2>New Helpdesk Ticket</h2>
			<p>Hi %s,</p>
			<p>A new ticket has been submitted and is waiting for triage.</p>
			<ul>
				<li><strong>Ticket:</strong> #%d %s</li>
				<li><strong>From:</strong> %s</li>
				<li><strong>Division:</strong> %s</li>
				<li><strong>Submitted:</strong> %s</li>
			</ul>
			<p><a href="%s">Open the ticket in the dashboard</a></p>
		</body>
		</html>
	`, adminName, ticketID, ticketTitle, userName, userDivision, time.Now().Format("2 Jan 2006 15:04"), dashboardURL)

	plainBody := fmt.Sprintf(`
Hi %s,

A new ticket has been submitted and is waiting for triage.

Ticket:    #%d %s
From:      %s
Division:  %s
Submitted: %s

Open the ticket in the dashboard:
%s
	`, adminName, ticketID, ticketTitle, userName, userDivision, time.Now().Format("2 Jan 2006 15:04"), dashboardURL)

	return s.sendEmail(to, subject, htmlBody, plainBody)
}

func (s *SMTPEmailService) sendEmail(to, subject, htmlBody, plainBody string) error {
	m := gomail.NewMessage()
	m.SetHeader("From", m.FormatAddress(s.config.FromAddress, s.config.FromName))
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/plain", plainBody)
	m.AddAlternative("text/html", htmlBody)

	if err := s.dialer.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %w", err)
	}

	return nil
}
