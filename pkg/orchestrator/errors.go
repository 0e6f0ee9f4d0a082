package orchestrator

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAuthUnavailable signals that no authentication client is configured.
// Raised synchronously before any external call is attempted.
var ErrAuthUnavailable = errors.New("orchestrator: auth client is not configured")

// ValidationError reports the required fields left empty at submission time.
// No external call is made when it is returned.
type ValidationError struct {
	Labels []string
}

func (e *ValidationError) Error() string {
	return "orchestrator: the following fields need to be filled out: " + strings.Join(e.Labels, ", ")
}

// MissingUsernameError signals that no field resolved to a non-empty username
// after payload construction. The caller must not submit; the field set needs
// either a field keyed "username" or one whose label matches the username
// strategy's label.
type MissingUsernameError struct {
	Label string
}

func (e *MissingUsernameError) Error() string {
	return fmt.Sprintf("orchestrator: no sign up field matched the username label %q and no username value was captured", e.Label)
}

// RemoteError wraps a rejection from the external authentication capability.
// The underlying error is surfaced verbatim through Unwrap.
type RemoteError struct {
	Op  string
	Err error
}

func (e *RemoteError) Error() string {
	return fmt.Sprintf("orchestrator: %s: %v", e.Op, e.Err)
}

func (e *RemoteError) Unwrap() error {
	return e.Err
}
