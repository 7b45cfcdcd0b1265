package hubzz

import (
	_ "embed"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Fixture keys, one per entity collection the mock source serves.
const (
	fixtureEvent         = "event"
	fixtureStages        = "stages"
	fixtureStreamQueue   = "streamQueue"
	fixtureDropIn        = "dropInSession"
	fixtureGroupMembers  = "groupMembers"
	fixtureGroupProfile  = "groupProfile"
	fixtureTickets       = "tickets"
	fixtureStubs         = "stubs"
	fixtureNotifications = "notifications"
)

//go:embed fixtures.yaml
var fixturesYAML []byte

// Store holds the fixture set as raw JSON per entity. Payloads are kept raw
// so every read passes through the schema gate, exactly like a remote body.
type Store struct {
	raw map[string]json.RawMessage
}

// LoadFixtures parses the embedded fixture document. The YAML is re-encoded
// as JSON so the mock path and the remote path share one decode+validate
// pipeline.
func LoadFixtures() (*Store, error) {
	var doc map[string]any
	if err := yaml.Unmarshal(fixturesYAML, &doc); err != nil {
		return nil, fmt.Errorf("fixtures: %w", err)
	}
	raw := make(map[string]json.RawMessage, len(doc))
	for key, value := range doc {
		b, err := json.Marshal(value)
		if err != nil {
			return nil, fmt.Errorf("fixtures: encode %q: %w", key, err)
		}
		raw[key] = b
	}
	return &Store{raw: raw}, nil
}

// Get returns the raw payload for a fixture key.
func (s *Store) Get(key string) (json.RawMessage, bool) {
	b, ok := s.raw[key]
	return b, ok
}
