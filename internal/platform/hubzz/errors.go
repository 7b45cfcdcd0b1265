package hubzz

import (
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrNotFound means the requested identifier does not exist in the
	// active source: a fixture miss in mock mode, or an upstream 404.
	ErrNotFound = errors.New("hubzz: not found")

	// ErrBadRequest means the caller omitted a required identifier.
	ErrBadRequest = errors.New("hubzz: missing identifier")
)

// StatusError is a non-2xx reply from the platform API. The upstream status
// code is carried for the boundary layer to propagate.
type StatusError struct {
	Code int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("hubzz api error %d", e.Code)
}

// Is lets an upstream 404 satisfy errors.Is(err, ErrNotFound).
func (e *StatusError) Is(target error) bool {
	return target == ErrNotFound && e.Code == http.StatusNotFound
}

// ValidationError is a payload (mock or remote) that decoded as JSON but does
// not conform to the schema. It never carries an HTTP status: it signals a
// contract mismatch, not a client input problem.
type ValidationError struct {
	Err error
}

func (e *ValidationError) Error() string {
	return "hubzz api response validation failed: " + e.Err.Error()
}

func (e *ValidationError) Unwrap() error { return e.Err }
