package services

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/hubzz/preview-api/internal/domain/event"
)

// DefaultClientBaseURL is where deep links point when no client base is
// configured.
const DefaultClientBaseURL = "https://app.hubzz.com"

const customScheme = "hubzz://join?"

var mobileUserAgentRe = regexp.MustCompile(`(?i)iPhone|iPad|Android`)

// DeepLink builds the canonical join URI for a stage:
//
//	{base}/join?zone=&venue=&x=&y=&z=[&token=]
//
// Parameter order is fixed; callers compare and cache these strings, so the
// query cannot be built with url.Values (it sorts keys on encode).
func DeepLink(base string, stage event.Stage, token string) string {
	if base == "" {
		base = DefaultClientBaseURL
	}

	var b strings.Builder
	b.WriteString(base)
	b.WriteString("/join?zone=")
	b.WriteString(url.QueryEscape(stage.ZoneID))
	b.WriteString("&venue=")
	b.WriteString(url.QueryEscape(stage.VenueModuleID))
	b.WriteString("&x=")
	b.WriteString(formatCoordinate(stage.VenueCoordinates.X))
	b.WriteString("&y=")
	b.WriteString(formatCoordinate(stage.VenueCoordinates.Y))
	b.WriteString("&z=")
	b.WriteString(formatCoordinate(stage.VenueCoordinates.Z))
	if token != "" {
		b.WriteString("&token=")
		b.WriteString(url.QueryEscape(token))
	}
	return b.String()
}

// CustomSchemeLink rewrites a canonical deep link onto the hubzz:// scheme,
// carrying the same query.
func CustomSchemeLink(link string) string {
	if i := strings.IndexByte(link, '?'); i >= 0 {
		return customScheme + link[i+1:]
	}
	return customScheme
}

func formatCoordinate(v float64) string {
	return url.QueryEscape(strconv.FormatFloat(v, 'f', -1, 64))
}

// Navigator is the interactive-navigation capability. The boundary injects
// one when a user context exists; the core never probes for a browser.
type Navigator interface {
	// Navigate replaces the current location.
	Navigate(url string)
	// OpenNewTab opens url in a new, unreferenced browsing context.
	OpenNewTab(url string)
}

// Opener performs best-effort deep-link navigation. On mobile it first
// activates the custom-scheme variant, then after a fixed delay navigates to
// the web link unconditionally — there is no callback telling us whether the
// custom scheme worked, so the web link is the guaranteed landing spot.
type Opener struct {
	nav   Navigator
	delay time.Duration
}

// NewOpener wires an opener around a navigator. A nil navigator makes every
// Open a no-op, which is the correct behavior outside an interactive client.
func NewOpener(nav Navigator) *Opener {
	return &Opener{nav: nav, delay: time.Second}
}

// Open navigates to link, choosing the strategy from the user agent.
func (o *Opener) Open(link, userAgent string) {
	if o == nil || o.nav == nil {
		return
	}
	if mobileUserAgentRe.MatchString(userAgent) {
		o.nav.Navigate(CustomSchemeLink(link))
		time.AfterFunc(o.delay, func() {
			o.nav.Navigate(link)
		})
		return
	}
	o.nav.OpenNewTab(link)
}
