package travel

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidMethod is returned when an endpoint-method selector is not
	// one of the supported values.
	ErrInvalidMethod = errors.New("invalid method")

	// ErrRestrictedAccess is returned when the provider denies access to a
	// restricted endpoint entirely.
	ErrRestrictedAccess = errors.New("restricted access")

	// ErrSessionTimeout is returned when session creation exhausted its
	// retry budget without the provider handing out a session id.
	ErrSessionTimeout = errors.New("session polling timed out")
)

// TransportError reports an HTTP-level failure: either the request never
// completed (Err is set, Status is 0) or the provider answered with an
// error status (Status is set, Body holds the raw response).
//
// Use errors.As to inspect the status:
//
//	var terr *travel.TransportError
//	if errors.As(err, &terr) && terr.Status == 410 {
//	    // session expired, recreate
//	}
type TransportError struct {
	Status int
	Body   []byte
	Err    error
}

func (e *TransportError) Error() string {
	if e.Status > 0 {
		return fmt.Sprintf("transport: %s", StatusMessage(e.Status))
	}
	return fmt.Sprintf("transport: %v", e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
