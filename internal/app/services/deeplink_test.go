package services

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubzz/preview-api/internal/domain/event"
)

func testStage() event.Stage {
	return event.Stage{
		ID:               "stg-1",
		Name:             "Main Stage",
		VenueModuleID:    "v1",
		ZoneID:           "z1",
		StreamType:       event.StreamTypeSpatial,
		DeepLink:         "https://app.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3",
		VenueCoordinates: event.VenueCoordinates{X: 1, Y: 2, Z: 3},
	}
}

func TestDeepLinkParameterOrder(t *testing.T) {
	link := DeepLink("https://preview.hubzz.com", testStage(), "")
	assert.Equal(t, "https://preview.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3", link)
}

func TestDeepLinkWithToken(t *testing.T) {
	link := DeepLink("https://preview.hubzz.com", testStage(), "tok 123/=")
	assert.Equal(t, "https://preview.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3&token=tok+123%2F%3D", link)
}

func TestDeepLinkDefaultBase(t *testing.T) {
	link := DeepLink("", testStage(), "")
	assert.Equal(t, DefaultClientBaseURL+"/join?zone=z1&venue=v1&x=1&y=2&z=3", link)
}

func TestDeepLinkEscapesComponents(t *testing.T) {
	st := testStage()
	st.ZoneID = "zone one"
	st.VenueModuleID = "v&1"
	st.VenueCoordinates = event.VenueCoordinates{X: -48.25, Y: 0, Z: 7.5}

	link := DeepLink("https://preview.hubzz.com", st, "")
	assert.Equal(t, "https://preview.hubzz.com/join?zone=zone+one&venue=v%261&x=-48.25&y=0&z=7.5", link)
}

func TestCustomSchemeLink(t *testing.T) {
	link := "https://app.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3"
	assert.Equal(t, "hubzz://join?zone=z1&venue=v1&x=1&y=2&z=3", CustomSchemeLink(link))
}

type fakeNavigator struct {
	mu        sync.Mutex
	navigated []string
	newTabs   []string
}

func (f *fakeNavigator) Navigate(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.navigated = append(f.navigated, url)
}

func (f *fakeNavigator) OpenNewTab(url string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.newTabs = append(f.newTabs, url)
}

func (f *fakeNavigator) snapshot() ([]string, []string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]string(nil), f.navigated...), append([]string(nil), f.newTabs...)
}

const iphoneUA = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
const desktopUA = "Mozilla/5.0 (Macintosh; Intel Mac OS X 14_0)"

func TestOpenerDesktopOpensNewTab(t *testing.T) {
	nav := &fakeNavigator{}
	o := NewOpener(nav)
	link := "https://app.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3"

	o.Open(link, desktopUA)

	navigated, newTabs := nav.snapshot()
	assert.Empty(t, navigated)
	assert.Equal(t, []string{link}, newTabs)
}

func TestOpenerMobileFallsBackToWebLink(t *testing.T) {
	nav := &fakeNavigator{}
	o := &Opener{nav: nav, delay: 50 * time.Millisecond}
	link := "https://app.hubzz.com/join?zone=z1&venue=v1&x=1&y=2&z=3"

	o.Open(link, iphoneUA)

	// The custom scheme fires immediately; the web link follows
	// unconditionally after the delay.
	navigated, _ := nav.snapshot()
	require.Equal(t, []string{"hubzz://join?zone=z1&venue=v1&x=1&y=2&z=3"}, navigated)

	assert.Eventually(t, func() bool {
		navigated, _ := nav.snapshot()
		return len(navigated) == 2 && navigated[1] == link
	}, time.Second, 5*time.Millisecond)
}

func TestOpenerNilNavigatorIsNoOp(t *testing.T) {
	assert.NotPanics(t, func() {
		NewOpener(nil).Open("https://app.hubzz.com/join?zone=z1", iphoneUA)
	})
	var o *Opener
	assert.NotPanics(t, func() {
		o.Open("https://app.hubzz.com/join?zone=z1", desktopUA)
	})
}
