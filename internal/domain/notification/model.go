package notification

// Type is the closed set of notification kinds the feed renders.
type Type string

const (
	TypeEvent          Type = "event"
	TypeFriendRequest  Type = "friend-request"
	TypeFriendAccepted Type = "friend-accepted"
	TypeSystem         Type = "system"
)

// Notification is one entry in a user's feed.
type Notification struct {
	ID        string `json:"id" validate:"required"`
	Type      Type   `json:"type" validate:"required,oneof=event friend-request friend-accepted system"`
	Title     string `json:"title" validate:"required"`
	Message   string `json:"message" validate:"required"`
	CTALabel  string `json:"ctaLabel,omitempty"`
	CTAHref   string `json:"ctaHref,omitempty"`
	CreatedAt string `json:"createdAt" validate:"required,iso8601"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
}
