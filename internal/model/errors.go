package model

import "errors"

// Not-found sentinels for the gateway and session storage, distinct from
// generic remote failures.
var (
	ErrProfileNotFound    = errors.New("profile not found")
	ErrSessionNotFound    = errors.New("session not found")
	ErrTournamentNotFound = errors.New("tournament not found")
)

// ValidationError is a form-level error caught before any remote call.
// It is rendered inline in the form, never surfaced as a raw notification.
type ValidationError struct {
	Field   string
	Message string
	// Index is the platform row the error refers to, for Field "platforms".
	Index int
}

func (e ValidationError) Error() string {
	return e.Message
}

// RemoteError is any failure reported by the backend-as-a-service or the
// payment provider. The provider's message is surfaced to the user verbatim
// and the call is never retried.
type RemoteError struct {
	// Message is the provider's own error text.
	Message string
	// Status is the HTTP status of the failed call, 0 for transport errors.
	Status int
}

func (e *RemoteError) Error() string {
	return e.Message
}

// AsRemote unwraps err to a RemoteError if there is one in its chain.
func AsRemote(err error) (*RemoteError, bool) {
	var re *RemoteError
	if errors.As(err, &re) {
		return re, true
	}
	return nil, false
}
