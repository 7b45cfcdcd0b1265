package services

// SourceSelector decides, per call, whether the domain client reads the mock
// fixture set or the remote API. Precedence, highest first: an explicit
// request flag, the process-wide environment preference, then mock-on.
//
// The literals "false" and "0" mean remote; any other present value means
// mock. The environment preference is tri-state (nil = unset) so an absent
// variable falls through to the default instead of reading as false.
type SourceSelector struct {
	envPreference *bool
	fallback      bool
}

// NewSourceSelector builds a selector around the resolved environment
// preference. Pass nil when no environment variable was set.
func NewSourceSelector(envPreference *bool) *SourceSelector {
	return &SourceSelector{envPreference: envPreference, fallback: true}
}

// UseMock resolves the mode for one request. present reports whether the
// request carried the flag at all, since an empty present value still means
// mock.
func (s *SourceSelector) UseMock(requestValue string, present bool) bool {
	if present {
		return requestValue != "false" && requestValue != "0"
	}
	if s.envPreference != nil {
		return *s.envPreference
	}
	return s.fallback
}
