package valueobjects

type TicketStatus string

const (
	StatusNew        TicketStatus = "new"
	StatusInProgress TicketStatus = "in_progress"
	StatusResolved   TicketStatus = "resolved"
)

var validTicketStatuses = map[TicketStatus]bool{
	StatusNew:        true,
	StatusInProgress: true,
	StatusResolved:   true,
}

var ticketStatusLabels = map[TicketStatus]string{
	StatusNew:        "New",
	StatusInProgress: "In Progress",
	StatusResolved:   "Resolved",
}

func (ts TicketStatus) String() string {
	return string(ts)
}

func (ts TicketStatus) IsValid() bool {
	return validTicketStatuses[ts]
}

// Label returns the human-readable status name used in notification copy.
func (ts TicketStatus) Label() string {
	if label, ok := ticketStatusLabels[ts]; ok {
		return label
	}
	return string(ts)
}

func (ts TicketStatus) IsResolved() bool {
	return ts == StatusResolved
}

func AllTicketStatuses() []TicketStatus {
	return []TicketStatus{StatusNew, StatusInProgress, StatusResolved}
}
