package hubzz

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFixturesHasEveryKey(t *testing.T) {
	store, err := LoadFixtures()
	require.NoError(t, err)

	for _, key := range []string{
		fixtureEvent, fixtureStages, fixtureStreamQueue, fixtureDropIn,
		fixtureGroupMembers, fixtureGroupProfile, fixtureTickets,
		fixtureStubs, fixtureNotifications,
	} {
		_, ok := store.Get(key)
		assert.True(t, ok, "missing fixture %q", key)
	}

	_, ok := store.Get("no-such-fixture")
	assert.False(t, ok)
}

// Every mock operation must return data that passes the same schema used for
// remote payloads. This is the contract that keeps fixtures honest.
func TestEveryMockOperationRevalidates(t *testing.T) {
	c := testClient(t, "http://unused.invalid")
	ctx := context.Background()

	_, err := c.GetEvent(ctx, "evt-genesis", true)
	assert.NoError(t, err)
	_, err = c.GetEventStages(ctx, "evt-genesis", true)
	assert.NoError(t, err)
	_, err = c.GetStreamQueue(ctx, "evt-genesis", true)
	assert.NoError(t, err)
	_, err = c.GetDropInSession(ctx, "evt-genesis", true)
	assert.NoError(t, err)
	_, err = c.GetGroupMembers(ctx, "grp-midnight", true)
	assert.NoError(t, err)
	_, err = c.GetGroupProfile(ctx, "grp-midnight", true)
	assert.NoError(t, err)
	_, err = c.GetUserTickets(ctx, "usr-any", true)
	assert.NoError(t, err)
	_, err = c.GetUserNotifications(ctx, "usr-any", true)
	assert.NoError(t, err)
	_, err = c.GetStub(ctx, "stb-afterglow-302", true)
	assert.NoError(t, err)
}
