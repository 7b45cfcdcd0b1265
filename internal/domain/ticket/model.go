package ticket

// Status is the upstream-issued lifecycle bucket for a ticket. Presentation
// state is always re-derived from the timestamps and the current instant;
// the status field alone is never trusted for live/past decisions.
type Status string

const (
	StatusUpcoming Status = "upcoming"
	StatusLive     Status = "live"
	StatusPast     Status = "past"
	StatusStub     Status = "stub"
)

// Ticket is an attendee's admission record for one event. It is issued once
// upstream and never mutated here.
//
// CanJoinAt is optional; when absent the join window opens at StartTime. The
// defaulting happens in the lifecycle engine, not in the schema. DeepLink may
// be empty, in which case the ticket has no join navigation.
type Ticket struct {
	ID            string `json:"id" validate:"required"`
	EventID       string `json:"eventId" validate:"required"`
	EventName     string `json:"eventName" validate:"required"`
	VenueName     string `json:"venueName" validate:"required"`
	HostName      string `json:"hostName" validate:"required"`
	ZoneID        string `json:"zoneId" validate:"required"`
	VenueModuleID string `json:"venueModuleId" validate:"required"`
	StartTime     string `json:"startTime" validate:"required,iso8601"`
	EndTime       string `json:"endTime" validate:"required,iso8601"`
	CanJoinAt     string `json:"canJoinAt,omitempty" validate:"omitempty,iso8601"`
	IssuedAt      string `json:"issuedAt" validate:"required,iso8601"`
	TicketNumber  string `json:"ticketNumber" validate:"required"`
	Status        Status `json:"status" validate:"required,oneof=upcoming live past stub"`
	DeepLink      string `json:"deepLink"`
	StubID        string `json:"stubId,omitempty"`
	IsCurrent     bool   `json:"isCurrent,omitempty"`
}
