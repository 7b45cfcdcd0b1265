package hubzz

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hubzz/preview-api/internal/domain/event"
	"github.com/hubzz/preview-api/internal/domain/stream"
	"github.com/hubzz/preview-api/internal/domain/ticket"
)

func testClient(t *testing.T, baseURL string) *Client {
	t.Helper()
	store, err := LoadFixtures()
	require.NoError(t, err)
	return NewClient(Config{
		BaseURL:  baseURL,
		Fixtures: store,
	})
}

func remoteEventBody() map[string]any {
	return map[string]any{
		"id":          "evt-9",
		"name":        "Remote Event",
		"description": "Served by the platform API.",
		"startTime":   "2026-10-01T18:00:00Z",
		"endTime":     "2026-10-01T21:00:00Z",
		"groupId":     "grp-9",
		"zoneId":      "zone-9",
		"venueCoordinates": map[string]any{
			"x": 1.0, "y": 2.0, "z": 3.0,
		},
		"ticketPrice": 10.0,
	}
}

func TestGetEventRemote(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/events/evt-9", r.URL.Path)
		_ = json.NewEncoder(w).Encode(remoteEventBody())
	}))
	defer srv.Close()

	ev, err := testClient(t, srv.URL).GetEvent(context.Background(), "evt-9", false)
	require.NoError(t, err)
	assert.Equal(t, "evt-9", ev.ID)
	assert.Equal(t, "zone-9", ev.ZoneID)
}

func TestRemoteNon2xxCarriesStatus(t *testing.T) {
	for _, status := range []int{http.StatusBadGateway, http.StatusForbidden, http.StatusNotFound} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(status)
		}))

		_, err := testClient(t, srv.URL).GetEvent(context.Background(), "evt-9", false)
		srv.Close()

		var statusErr *StatusError
		require.ErrorAs(t, err, &statusErr)
		assert.Equal(t, status, statusErr.Code)
	}
}

func TestRemote404SatisfiesNotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).GetStub(context.Background(), "stb-missing", false)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteSchemaInvalidBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := remoteEventBody()
		delete(body, "zoneId")
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).GetEvent(context.Background(), "evt-9", false)

	var validationErr *ValidationError
	require.ErrorAs(t, err, &validationErr)
	// A validation failure never carries an upstream status.
	var statusErr *StatusError
	assert.False(t, errors.As(err, &statusErr))
	assert.NotErrorIs(t, err, ErrNotFound)
}

func TestRemoteMalformedURLInBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body := remoteEventBody()
		body["recordingUrl"] = "not a url"
		_ = json.NewEncoder(w).Encode(body)
	}))
	defer srv.Close()

	_, err := testClient(t, srv.URL).GetEvent(context.Background(), "evt-9", false)
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestAPIKeyHeaderOnlyWithCapability(t *testing.T) {
	var gotKey string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotKey = r.Header.Get("x-hubzz-api-key")
		_ = json.NewEncoder(w).Encode(remoteEventBody())
	}))
	defer srv.Close()

	store, err := LoadFixtures()
	require.NoError(t, err)

	// Capability granted and key configured: header attached.
	c := NewClient(Config{BaseURL: srv.URL, APIKey: "secret", AttachKey: true, Fixtures: store})
	_, err = c.GetEvent(context.Background(), "evt-9", false)
	require.NoError(t, err)
	assert.Equal(t, "secret", gotKey)

	// No capability (browser-equivalent context): never attached.
	c = NewClient(Config{BaseURL: srv.URL, APIKey: "secret", AttachKey: false, Fixtures: store})
	_, err = c.GetEvent(context.Background(), "evt-9", false)
	require.NoError(t, err)
	assert.Empty(t, gotKey)

	// Capability without a key: nothing to attach.
	c = NewClient(Config{BaseURL: srv.URL, AttachKey: true, Fixtures: store})
	_, err = c.GetEvent(context.Background(), "evt-9", false)
	require.NoError(t, err)
	assert.Empty(t, gotKey)
}

func TestMissingIdentifier(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	_, err := c.GetEvent(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = c.GetUserTickets(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrBadRequest)
	_, err = c.GetStub(context.Background(), "", true)
	assert.ErrorIs(t, err, ErrBadRequest)
}

func TestMockStubLookup(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	s, err := c.GetStub(context.Background(), "stb-afterglow-302", true)
	require.NoError(t, err)
	assert.Equal(t, "tkt-0990", s.TicketID)

	_, err = c.GetStub(context.Background(), "stb-nope", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockGroupProfileIdentityKeyed(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	p, err := c.GetGroupProfile(context.Background(), "grp-midnight", true)
	require.NoError(t, err)
	assert.Equal(t, "Midnight Collective", p.Name)

	_, err = c.GetGroupProfile(context.Background(), "grp-other", true)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestMockTicketsSourceOrder(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	tickets, err := c.GetUserTickets(context.Background(), "usr-any", true)
	require.NoError(t, err)
	require.Len(t, tickets, 3)
	assert.Equal(t, "tkt-1001", tickets[0].ID)
	assert.Equal(t, "tkt-1002", tickets[1].ID)
	assert.Equal(t, "tkt-0990", tickets[2].ID)
	assert.Equal(t, ticket.StatusStub, tickets[2].Status)
	assert.Equal(t, "stb-afterglow-302", tickets[2].StubID)
}

func TestMockStreamQueueActive(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	q, err := c.GetStreamQueue(context.Background(), "evt-genesis", true)
	require.NoError(t, err)

	active, ok := q.Active()
	require.True(t, ok)
	assert.Equal(t, stream.PlatformTwitch, active.Platform)

	// An out-of-range index is a representable state, not an error.
	q.ActiveStreamIndex = len(q.Streams)
	_, ok = q.Active()
	assert.False(t, ok)

	q.ActiveStreamIndex = -1
	_, ok = q.Active()
	assert.False(t, ok)
}

func TestMockStagesValidate(t *testing.T) {
	c := testClient(t, "http://unused.invalid")

	stages, err := c.GetEventStages(context.Background(), "evt-genesis", true)
	require.NoError(t, err)
	require.Len(t, stages, 2)
	assert.Equal(t, event.StreamTypeSpatial, stages[0].StreamType)
	assert.Equal(t, event.StreamTypeExternal, stages[1].StreamType)
	assert.NotEmpty(t, stages[1].ExternalStreamURL)
}
