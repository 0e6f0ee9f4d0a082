// Package auth defines the external authentication capability the sign-up
// pipeline delegates to. The module ships no network implementation; callers
// plug in their identity provider's SDK.
package auth

import "context"

// SignUpRequest is the payload handed to the authentication backend: the
// derived username, the password, and every collected attribute (custom
// attribute keys carry the "custom:" prefix).
type SignUpRequest struct {
	Username   string            `json:"username"`
	Password   string            `json:"password,omitempty"`
	Attributes map[string]string `json:"attributes"`
}

// User identifies a registered account pending confirmation.
type User struct {
	Username string `json:"username"`
}

// Session is the opaque result of a successful sign-in.
type Session struct {
	Username string `json:"username"`
	Payload  any    `json:"payload,omitempty"`
}

// Client is the authentication capability consumed by the orchestrator. Every
// call is a single in-flight request-response: no retry, no rollback. A
// failed call surfaces its error untouched.
type Client interface {
	SignUp(ctx context.Context, req SignUpRequest) (User, error)
	ConfirmSignUp(ctx context.Context, username, code string) error
	ResendSignUp(ctx context.Context, username string) error
	SignIn(ctx context.Context, username, password string) (Session, error)
}
