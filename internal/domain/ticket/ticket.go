package ticket

import (
	"fmt"
	"time"

	vo "github.com/helpdesk-inc/helpdesk/internal/domain/ticket/valueobjects"
)

type Ticket struct {
	id                   uint
	userID               uint
	title                string
	description          string
	category             *string
	status               vo.TicketStatus
	adminNotes           *string
	imageUserURL         *string
	imageAdminURL        *string
	imageAdminUploadedAt *time.Time
	createdAt            time.Time
	updatedAt            time.Time
}

func NewTicket(userID uint, title, description string, category, imageUserURL *string) (*Ticket, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 200 {
		return nil, fmt.Errorf("title exceeds maximum length of 200 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if len(description) > 5000 {
		return nil, fmt.Errorf("description exceeds maximum length of 5000 characters")
	}

	now := time.Now()

	return &Ticket{
		userID:       userID,
		title:        title,
		description:  description,
		category:     category,
		status:       vo.StatusNew,
		imageUserURL: imageUserURL,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructTicket(
	id uint,
	userID uint,
	title string,
	description string,
	category *string,
	status vo.TicketStatus,
	adminNotes *string,
	imageUserURL *string,
	imageAdminURL *string,
	imageAdminUploadedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid status")
	}

	return &Ticket{
		id:                   id,
		userID:               userID,
		title:                title,
		description:          description,
		category:             category,
		status:               status,
		adminNotes:           adminNotes,
		imageUserURL:         imageUserURL,
		imageAdminURL:        imageAdminURL,
		imageAdminUploadedAt: imageAdminUploadedAt,
		createdAt:            createdAt,
		updatedAt:            updatedAt,
	}, nil
}

func (t *Ticket) ID() uint {
	return t.id
}

func (t *Ticket) UserID() uint {
	return t.userID
}

func (t *Ticket) Title() string {
	return t.title
}

func (t *Ticket) Description() string {
	return t.description
}

func (t *Ticket) Category() *string {
	return t.category
}

func (t *Ticket) Status() vo.TicketStatus {
	return t.status
}

func (t *Ticket) AdminNotes() *string {
	return t.adminNotes
}

func (t *Ticket) ImageUserURL() *string {
	return t.imageUserURL
}

func (t *Ticket) ImageAdminURL() *string {
	return t.imageAdminURL
}

func (t *Ticket) ImageAdminUploadedAt() *time.Time {
	return t.imageAdminUploadedAt
}

func (t *Ticket) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Ticket) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Ticket) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("ticket ID already set")
	}
	if id == 0 {
		return fmt.Errorf("ticket ID cannot be zero")
	}
	t.id = id
	return nil
}

// ChangeStatus moves the ticket to a new status. Any valid status is reachable
// from any other; there is no restricted transition graph in this workflow.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid status: %s", newStatus)
	}
	t.status = newStatus
	t.updatedAt = time.Now()
	return nil
}

// SetCategory overrides the classifier-assigned category.
func (t *Ticket) SetCategory(category string) error {
	if len(category) == 0 {
		return fmt.Errorf("category cannot be empty")
	}
	t.category = &category
	t.updatedAt = time.Now()
	return nil
}

func (t *Ticket) SetAdminNotes(notes string) {
	t.adminNotes = &notes
	t.updatedAt = time.Now()
}

// SetAdminImage attaches a resolution image and stamps its upload time.
func (t *Ticket) SetAdminImage(url string) error {
	if len(url) == 0 {
		return fmt.Errorf("image URL cannot be empty")
	}
	now := time.Now()
	t.imageAdminURL = &url
	t.imageAdminUploadedAt = &now
	t.updatedAt = now
	return nil
}

// ClearAdminImage removes the resolution image and its upload timestamp.
func (t *Ticket) ClearAdminImage() {
	t.imageAdminURL = nil
	t.imageAdminUploadedAt = nil
	t.updatedAt = time.Now()
}

func (t *Ticket) CanBeViewedBy(userID uint, isAdmin bool) bool {
	if isAdmin {
		return true
	}
	return t.userID == userID
}
