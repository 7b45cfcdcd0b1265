package stub

// Host is a person credited with running the event the stub records.
type Host struct {
	ID        string `json:"id" validate:"required"`
	Name      string `json:"name" validate:"required"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Role      string `json:"role,omitempty"`
}

// Guest is an attendee listed on the stub, optionally with how long they
// stayed and their admission rank.
type Guest struct {
	ID              string `json:"id" validate:"required"`
	Name            string `json:"name" validate:"required"`
	AvatarURL       string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	DurationMinutes int    `json:"durationMinutes,omitempty" validate:"gte=0"`
	AttendeeNumber  int    `json:"attendeeNumber,omitempty" validate:"gte=0"`
}

// Stub is the durable keepsake record of a past event. Once an event has
// ended, the stub supersedes the ticket's call to action.
type Stub struct {
	ID            string  `json:"id" validate:"required"`
	TicketID      string  `json:"ticketId" validate:"required"`
	TicketNumber  string  `json:"ticketNumber" validate:"required"`
	EventName     string  `json:"eventName" validate:"required"`
	Description   string  `json:"description" validate:"required"`
	VenueName     string  `json:"venueName" validate:"required"`
	VenueImageURL string  `json:"venueImageUrl,omitempty" validate:"omitempty,url"`
	HostName      string  `json:"hostName" validate:"required"`
	StartTime     string  `json:"startTime" validate:"required,iso8601"`
	EndTime       string  `json:"endTime" validate:"required,iso8601"`
	ZoneID        string  `json:"zoneId" validate:"required"`
	VenueModuleID string  `json:"venueModuleId" validate:"required"`
	ReplayURL     string  `json:"replayUrl,omitempty" validate:"omitempty,url"`
	HostedBy      []Host  `json:"hostedBy" validate:"dive"`
	Guests        []Guest `json:"guests" validate:"dive"`
	GuestCount    int     `json:"guestCount" validate:"gte=0"`
	StubCode      string  `json:"stubCode" validate:"required"`
}
