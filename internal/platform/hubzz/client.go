// Package hubzz is the typed client for the Hubzz platform API. Every
// operation reads either the remote API or the embedded fixture set and runs
// the payload through the schema registry before returning it; mock data is
// not trusted any more than remote data. The client keeps no state between
// calls and never caches, retries, or reorders results.
package hubzz

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"go.uber.org/zap"

	"github.com/hubzz/preview-api/internal/domain/dropin"
	"github.com/hubzz/preview-api/internal/domain/event"
	"github.com/hubzz/preview-api/internal/domain/group"
	"github.com/hubzz/preview-api/internal/domain/notification"
	"github.com/hubzz/preview-api/internal/domain/stream"
	"github.com/hubzz/preview-api/internal/domain/stub"
	"github.com/hubzz/preview-api/internal/domain/ticket"
	"github.com/hubzz/preview-api/internal/schema"
)

const (
	defaultBaseURL = "https://api.hubzz.local"
	apiKeyHeader   = "x-hubzz-api-key"
)

// Config wires a Client. AttachKey is the "may attach secret header"
// capability; the boundary decides it once (server-side only) and the client
// never probes its execution context.
type Config struct {
	BaseURL    string
	APIKey     string
	AttachKey  bool
	HTTPClient *http.Client
	Fixtures   *Store
	Schema     *schema.Registry
	Logger     *zap.Logger
}

// Client fetches and validates Hubzz domain entities.
type Client struct {
	baseURL   string
	apiKey    string
	attachKey bool
	http      *http.Client
	fixtures  *Store
	schema    *schema.Registry
	log       *zap.Logger
}

func NewClient(cfg Config) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = defaultBaseURL
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = &http.Client{Timeout: 10 * time.Second}
	}
	if cfg.Schema == nil {
		cfg.Schema = schema.New()
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &Client{
		baseURL:   cfg.BaseURL,
		apiKey:    cfg.APIKey,
		attachKey: cfg.AttachKey,
		http:      cfg.HTTPClient,
		fixtures:  cfg.Fixtures,
		schema:    cfg.Schema,
		log:       cfg.Logger,
	}
}

// GetEvent returns one event by id.
func (c *Client) GetEvent(ctx context.Context, eventID string, useMock bool) (event.Event, error) {
	if eventID == "" {
		return event.Event{}, ErrBadRequest
	}
	if useMock {
		return fromFixture[event.Event](c, fixtureEvent)
	}
	return getJSON[event.Event](ctx, c, "/events/"+url.PathEscape(eventID))
}

// GetEventStages returns an event's stages in source order.
func (c *Client) GetEventStages(ctx context.Context, eventID string, useMock bool) ([]event.Stage, error) {
	if eventID == "" {
		return nil, ErrBadRequest
	}
	if useMock {
		return fromFixture[[]event.Stage](c, fixtureStages)
	}
	return getJSON[[]event.Stage](ctx, c, "/events/"+url.PathEscape(eventID)+"/stages")
}

// GetStreamQueue returns the stream rotation for an event.
func (c *Client) GetStreamQueue(ctx context.Context, eventID string, useMock bool) (stream.Queue, error) {
	if eventID == "" {
		return stream.Queue{}, ErrBadRequest
	}
	if useMock {
		return fromFixture[stream.Queue](c, fixtureStreamQueue)
	}
	return getJSON[stream.Queue](ctx, c, "/events/"+url.PathEscape(eventID)+"/stream-queue")
}

// GetDropInSession returns the drop-in room attached to an event.
func (c *Client) GetDropInSession(ctx context.Context, eventID string, useMock bool) (dropin.Session, error) {
	if eventID == "" {
		return dropin.Session{}, ErrBadRequest
	}
	if useMock {
		return fromFixture[dropin.Session](c, fixtureDropIn)
	}
	return getJSON[dropin.Session](ctx, c, "/events/"+url.PathEscape(eventID)+"/drop-in")
}

// GetGroupMembers returns a group's member roster in source order.
func (c *Client) GetGroupMembers(ctx context.Context, groupID string, useMock bool) ([]group.Member, error) {
	if groupID == "" {
		return nil, ErrBadRequest
	}
	if useMock {
		return fromFixture[[]group.Member](c, fixtureGroupMembers)
	}
	return getJSON[[]group.Member](ctx, c, "/groups/"+url.PathEscape(groupID)+"/members")
}

// GetGroupProfile returns a group's public page. The fixture is keyed by a
// single group; asking the mock source for any other id is a not-found.
func (c *Client) GetGroupProfile(ctx context.Context, groupID string, useMock bool) (group.Profile, error) {
	if groupID == "" {
		return group.Profile{}, ErrBadRequest
	}
	if useMock {
		profile, err := fromFixture[group.Profile](c, fixtureGroupProfile)
		if err != nil {
			return group.Profile{}, err
		}
		if profile.ID != groupID {
			return group.Profile{}, fmt.Errorf("group %q: %w", groupID, ErrNotFound)
		}
		return profile, nil
	}
	return getJSON[group.Profile](ctx, c, "/groups/"+url.PathEscape(groupID))
}

// GetUserTickets returns a user's tickets in source order.
func (c *Client) GetUserTickets(ctx context.Context, userID string, useMock bool) ([]ticket.Ticket, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	if useMock {
		return fromFixture[[]ticket.Ticket](c, fixtureTickets)
	}
	return getJSON[[]ticket.Ticket](ctx, c, "/users/"+url.PathEscape(userID)+"/tickets")
}

// GetUserNotifications returns a user's notification feed in source order.
func (c *Client) GetUserNotifications(ctx context.Context, userID string, useMock bool) ([]notification.Notification, error) {
	if userID == "" {
		return nil, ErrBadRequest
	}
	if useMock {
		return fromFixture[[]notification.Notification](c, fixtureNotifications)
	}
	return getJSON[[]notification.Notification](ctx, c, "/users/"+url.PathEscape(userID)+"/notifications")
}

// GetStub returns one stub by id. The mock source holds a list; an unknown id
// is a not-found, matching the remote API's 404.
func (c *Client) GetStub(ctx context.Context, stubID string, useMock bool) (stub.Stub, error) {
	if stubID == "" {
		return stub.Stub{}, ErrBadRequest
	}
	if useMock {
		stubs, err := fromFixture[[]stub.Stub](c, fixtureStubs)
		if err != nil {
			return stub.Stub{}, err
		}
		for _, s := range stubs {
			if s.ID == stubID {
				return s, nil
			}
		}
		return stub.Stub{}, fmt.Errorf("stub %q: %w", stubID, ErrNotFound)
	}
	return getJSON[stub.Stub](ctx, c, "/stubs/"+url.PathEscape(stubID))
}

// getJSON performs one remote read and validates the body. Non-2xx replies
// become StatusError; schema-invalid 2xx bodies become ValidationError.
func getJSON[T any](ctx context.Context, c *Client, path string) (T, error) {
	var out T

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return out, err
	}
	req.Header.Set("Accept", "application/json")
	if c.attachKey && c.apiKey != "" {
		req.Header.Set(apiKeyHeader, c.apiKey)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return out, fmt.Errorf("hubzz api request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		_, _ = io.Copy(io.Discard, resp.Body)
		c.log.Warn("hubzz api non-2xx", zap.String("path", path), zap.Int("status", resp.StatusCode))
		return out, &StatusError{Code: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, fmt.Errorf("hubzz api read: %w", err)
	}
	if err := c.schema.Decode(body, &out); err != nil {
		c.log.Warn("hubzz api payload rejected", zap.String("path", path), zap.Error(err))
		return out, &ValidationError{Err: err}
	}
	return out, nil
}

// fromFixture serves a fixture payload through the same validation gate the
// remote path uses.
func fromFixture[T any](c *Client, key string) (T, error) {
	var out T
	if c.fixtures == nil {
		return out, fmt.Errorf("fixture %q: %w", key, ErrNotFound)
	}
	raw, ok := c.fixtures.Get(key)
	if !ok {
		return out, fmt.Errorf("fixture %q: %w", key, ErrNotFound)
	}
	if err := c.schema.Decode(raw, &out); err != nil {
		return out, &ValidationError{Err: err}
	}
	return out, nil
}
