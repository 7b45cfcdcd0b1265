package event

// StreamType tells the client how a stage delivers its feed: positional audio
// inside the venue, or an embedded third-party stream.
type StreamType string

const (
	StreamTypeSpatial  StreamType = "spatial"
	StreamTypeExternal StreamType = "external"
)

// VenueCoordinates is a position inside a venue module.
type VenueCoordinates struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Event is a scheduled happening inside a zone. Timestamps stay ISO-8601
// strings at this layer; they are parsed only where a computation needs an
// instant.
type Event struct {
	ID               string           `json:"id" validate:"required"`
	Name             string           `json:"name" validate:"required"`
	Description      string           `json:"description" validate:"required"`
	StartTime        string           `json:"startTime" validate:"required,iso8601"`
	EndTime          string           `json:"endTime" validate:"required,iso8601"`
	GroupID          string           `json:"groupId" validate:"required"`
	ZoneID           string           `json:"zoneId" validate:"required"`
	VenueCoordinates VenueCoordinates `json:"venueCoordinates"`
	TicketPrice      float64          `json:"ticketPrice" validate:"gte=0"`
	RecordingURL     string           `json:"recordingUrl,omitempty" validate:"omitempty,url"`
}

// Stage is a physical spot inside an event's venue where a feed plays.
// ExternalStreamURL only carries meaning when StreamType is "external".
type Stage struct {
	ID                string           `json:"id" validate:"required"`
	Name              string           `json:"name" validate:"required"`
	VenueModuleID     string           `json:"venueModuleId" validate:"required"`
	ZoneID            string           `json:"zoneId" validate:"required"`
	StreamType        StreamType       `json:"streamType" validate:"required,oneof=spatial external"`
	ExternalStreamURL string           `json:"externalStreamUrl,omitempty" validate:"omitempty,url"`
	DeepLink          string           `json:"deepLink" validate:"required"`
	VenueCoordinates  VenueCoordinates `json:"venueCoordinates"`
	Priority          *float64         `json:"priority,omitempty"`
}
