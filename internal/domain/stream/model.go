package stream

// Platform identifies the third-party service carrying a stream.
type Platform string

const (
	PlatformKick    Platform = "kick"
	PlatformTwitch  Platform = "twitch"
	PlatformYouTube Platform = "youtube"
)

// Stream is one embeddable feed in an event's rotation.
type Stream struct {
	Platform  Platform `json:"platform" validate:"required,oneof=kick twitch youtube"`
	ChannelID string   `json:"channelId" validate:"required"`
	EmbedURL  string   `json:"embedUrl" validate:"required,url"`
	Priority  float64  `json:"priority"`
}

// Queue is the ordered stream rotation for an event. ActiveStreamIndex may
// point outside Streams; that is a legitimate "no active stream" state, not a
// data error.
type Queue struct {
	EventID           string   `json:"eventId" validate:"required"`
	ActiveStreamIndex int      `json:"activeStreamIndex"`
	Streams           []Stream `json:"streams" validate:"dive"`
}

// Active resolves the queue's active stream. The second return is false when
// the queue is empty or the index is out of range.
func (q Queue) Active() (Stream, bool) {
	if q.ActiveStreamIndex < 0 || q.ActiveStreamIndex >= len(q.Streams) {
		return Stream{}, false
	}
	return q.Streams[q.ActiveStreamIndex], true
}
