package services

import (
	"fmt"
	"time"

	"github.com/hubzz/preview-api/internal/domain/ticket"
)

// Call-to-action labels the ticket card renders.
const (
	CTAViewStub  = "View stub"
	CTAOpensSoon = "Opens soon"
	CTALeave     = "Leave"
	CTAJoinEvent = "Join event"
)

// ClickAction says what activating a ticket's control should do.
type ClickAction int

const (
	// ClickNone: the control does nothing, even if somehow activated.
	ClickNone ClickAction = iota
	// ClickStub: navigate to the stub page.
	ClickStub
	// ClickDeepLink: open the ticket's deep link.
	ClickDeepLink
)

// Countdown is a non-negative duration decomposed for display. It collapses
// to all-zero once the target instant has passed.
type Countdown struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
	Seconds int `json:"seconds"`
}

// IsZero reports whether the countdown has elapsed.
func (c Countdown) IsZero() bool {
	return c == Countdown{}
}

// CountdownUntil decomposes target−now into display units. Each unit is an
// integer division of the millisecond difference, taken modulo the unit
// above it; a non-positive difference yields all zeros.
func CountdownUntil(target, now time.Time) Countdown {
	diff := target.Sub(now).Milliseconds()
	if diff <= 0 {
		return Countdown{}
	}
	return Countdown{
		Days:    int(diff / 86_400_000),
		Hours:   int(diff / 3_600_000 % 24),
		Minutes: int(diff / 60_000 % 60),
		Seconds: int(diff / 1_000 % 60),
	}
}

// TicketState is one evaluation of a ticket against an instant. It is what a
// ticket card renders on every tick.
type TicketState struct {
	IsLive   bool
	IsPast   bool
	JoinOpen bool
	IsStub   bool

	// Countdown runs until the join window opens.
	Countdown Countdown

	CTALabel string
	Disabled bool

	Action ClickAction
	// Target is the destination for ClickStub and ClickDeepLink.
	Target string
}

// EvaluateTicket derives presentation state for a ticket at the given
// instant. It is a pure function: live views re-invoke it on a steady
// one-second cadence because "now" is the only changing input.
//
// stubHref is the stub page destination when one is known; it wins over the
// deep link for stub tickets.
func EvaluateTicket(t ticket.Ticket, stubHref string, now time.Time) (TicketState, error) {
	start, err := time.Parse(time.RFC3339, t.StartTime)
	if err != nil {
		return TicketState{}, fmt.Errorf("ticket %s startTime: %w", t.ID, err)
	}
	end, err := time.Parse(time.RFC3339, t.EndTime)
	if err != nil {
		return TicketState{}, fmt.Errorf("ticket %s endTime: %w", t.ID, err)
	}
	joinOpensAt := start
	if t.CanJoinAt != "" {
		joinOpensAt, err = time.Parse(time.RFC3339, t.CanJoinAt)
		if err != nil {
			return TicketState{}, fmt.Errorf("ticket %s canJoinAt: %w", t.ID, err)
		}
	}

	st := TicketState{
		IsLive:    !now.Before(start) && now.Before(end),
		IsPast:    !now.Before(end),
		JoinOpen:  !now.Before(joinOpensAt),
		IsStub:    t.Status == ticket.StatusStub || t.StubID != "",
		Countdown: CountdownUntil(joinOpensAt, now),
	}

	switch {
	case st.IsPast && st.IsStub:
		st.CTALabel = CTAViewStub
	case !st.JoinOpen && !st.IsLive:
		st.CTALabel = CTAOpensSoon
	case st.IsLive && t.IsCurrent:
		st.CTALabel = CTALeave
	default:
		st.CTALabel = CTAJoinEvent
	}

	// Stub tickets stay actionable: their control navigates to the stub
	// page regardless of the join window.
	if !st.IsStub {
		st.Disabled = !st.JoinOpen && !st.IsLive
	}

	switch {
	case st.IsStub && stubHref != "":
		st.Action = ClickStub
		st.Target = stubHref
	case t.DeepLink == "":
		st.Action = ClickNone
	case !st.JoinOpen && !st.IsLive:
		// Re-checked here even though the control should be disabled.
		st.Action = ClickNone
	default:
		st.Action = ClickDeepLink
		st.Target = t.DeepLink
	}

	return st, nil
}
