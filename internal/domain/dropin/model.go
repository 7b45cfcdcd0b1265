package dropin

// Participant is one person present in a drop-in room.
type Participant struct {
	ID         string `json:"id" validate:"required"`
	Name       string `json:"name" validate:"required"`
	AvatarURL  string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Role       string `json:"role,omitempty"`
	IsHost     bool   `json:"isHost,omitempty"`
	IsMuted    bool   `json:"isMuted,omitempty"`
	IsSpeaking bool   `json:"isSpeaking,omitempty"`
}

// Session is an ambient audio/video room attached to an event, separate from
// the main stage stream.
type Session struct {
	ID            string        `json:"id" validate:"required"`
	LocationLabel string        `json:"locationLabel,omitempty"`
	RoomName      string        `json:"roomName,omitempty"`
	Participants  []Participant `json:"participants" validate:"dive"`
}
