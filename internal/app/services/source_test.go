package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSourceSelectorRequestTier(t *testing.T) {
	// Request flag wins regardless of the environment preference.
	remote := false
	sel := NewSourceSelector(&remote)

	assert.False(t, sel.UseMock("false", true))
	assert.False(t, sel.UseMock("0", true))
	assert.True(t, sel.UseMock("true", true))
	assert.True(t, sel.UseMock("1", true))
	assert.True(t, sel.UseMock("anything", true))
	// Present-but-empty still forces mock.
	assert.True(t, sel.UseMock("", true))
}

func TestSourceSelectorEnvironmentTier(t *testing.T) {
	remote := false
	assert.False(t, NewSourceSelector(&remote).UseMock("", false))

	mock := true
	assert.True(t, NewSourceSelector(&mock).UseMock("", false))
}

func TestSourceSelectorDefaultIsMock(t *testing.T) {
	sel := NewSourceSelector(nil)
	assert.True(t, sel.UseMock("", false))
}

func TestSourceSelectorEnvFalseIsNotUnset(t *testing.T) {
	// "set false" must not fall through to the mock-on default.
	remote := false
	sel := NewSourceSelector(&remote)
	assert.False(t, sel.UseMock("", false))
}
