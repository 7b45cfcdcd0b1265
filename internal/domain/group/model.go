package group

// Role is a member's standing inside a group.
type Role string

const (
	RoleOwner  Role = "owner"
	RoleAdmin  Role = "admin"
	RoleMember Role = "member"
)

// EventStatus is the coarse state a group's event listing advertises.
type EventStatus string

const (
	EventUpcoming EventStatus = "upcoming"
	EventLive     EventStatus = "live"
	EventEnded    EventStatus = "ended"
)

// Member is a person belonging to a group.
type Member struct {
	ID        string `json:"id" validate:"required"`
	Username  string `json:"username" validate:"required"`
	AvatarURL string `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	Role      Role   `json:"role" validate:"required,oneof=owner admin member"`
}

// Event is an entry in a group's event listing. It is presentational data,
// distinct from the full event record the events endpoint serves.
type Event struct {
	ID            string      `json:"id" validate:"required"`
	Name          string      `json:"name" validate:"required"`
	StartTime     string      `json:"startTime" validate:"required,iso8601"`
	EndTime       string      `json:"endTime" validate:"required,iso8601"`
	HostName      string      `json:"hostName" validate:"required"`
	Status        EventStatus `json:"status" validate:"required,oneof=upcoming live ended"`
	ImageURL      string      `json:"imageUrl,omitempty" validate:"omitempty,url"`
	AttendeeCount int         `json:"attendeeCount,omitempty" validate:"gte=0"`
	Capacity      int         `json:"capacity,omitempty" validate:"gte=0"`
	IsFree        bool        `json:"isFree,omitempty"`
	RSVPLabel     string      `json:"rsvpLabel,omitempty"`
	CTALabel      string      `json:"ctaLabel,omitempty"`
	CTAHref       string      `json:"ctaHref,omitempty"`
}

// Merch is an item in a group's merchandise shelf. Prices are in HBC, the
// platform currency; some items unlock against collected stubs instead.
type Merch struct {
	ID            string  `json:"id" validate:"required"`
	Name          string  `json:"name" validate:"required"`
	Subtitle      string  `json:"subtitle,omitempty"`
	PriceHBC      float64 `json:"priceHbc" validate:"gte=0"`
	StubCost      int     `json:"stubCost,omitempty" validate:"gte=0"`
	RequiredStubs int     `json:"requiredStubs,omitempty" validate:"gte=0"`
	OwnedStubs    int     `json:"ownedStubs,omitempty" validate:"gte=0"`
	ImageURL      string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	SupplyLabel   string  `json:"supplyLabel,omitempty"`
	UnlockNote    string  `json:"unlockNote,omitempty"`
}

// Profile is a group's public page: descriptive fields plus ordered event and
// merch listings and the member roster. Nested collections validate
// element-wise; one bad element fails the whole profile.
type Profile struct {
	ID            string   `json:"id" validate:"required"`
	Name          string   `json:"name" validate:"required"`
	Description   string   `json:"description" validate:"required"`
	Category      string   `json:"category,omitempty"`
	CoverImageURL string   `json:"coverImageUrl,omitempty" validate:"omitempty,url"`
	AvatarURL     string   `json:"avatarUrl,omitempty" validate:"omitempty,url"`
	FollowerLabel string   `json:"followerLabel,omitempty"`
	IsFollowed    bool     `json:"isFollowed,omitempty"`
	StubCount     int      `json:"stubCount,omitempty" validate:"gte=0"`
	BadgeLabel    string   `json:"badgeLabel,omitempty"`
	Events        []Event  `json:"events" validate:"dive"`
	Merch         []Merch  `json:"merch" validate:"dive"`
	Members       []Member `json:"members" validate:"dive"`
}
