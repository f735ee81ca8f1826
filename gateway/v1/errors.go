package v1

import (
	"errors"
	"fmt"
)

var (
	ErrNotConfigured      = errors.New("gateway URL is not configured")
	ErrInvalidResponse    = errors.New("invalid server response")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// TransportError is a request that never produced a usable response.
type TransportError struct {
	Action string
	Err    error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("cannot reach the server (%s): %v", e.Action, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// RemoteError is an error reported by the gateway script itself.
type RemoteError struct {
	Action  string
	Message string
}

func (e *RemoteError) Error() string {
	return e.Message
}
