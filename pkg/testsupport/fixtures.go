// Package testsupport provides fixtures shared by the package tests: a
// scriptable fake authentication client and config/diff helpers.
package testsupport

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/auth"
	"github.com/goliatone/go-signup/pkg/config"
	"github.com/goliatone/go-signup/pkg/model"
)

// AuthCall records one invocation against the fake client.
type AuthCall struct {
	Op       string
	Username string
	Password string
	Code     string
	Request  auth.SignUpRequest
}

// FakeAuthClient implements auth.Client, recording every call and failing on
// demand through the scriptable error fields.
type FakeAuthClient struct {
	SignUpErr  error
	ConfirmErr error
	ResendErr  error
	SignInErr  error

	Calls []AuthCall
}

var _ auth.Client = (*FakeAuthClient)(nil)

func (f *FakeAuthClient) SignUp(_ context.Context, req auth.SignUpRequest) (auth.User, error) {
	f.Calls = append(f.Calls, AuthCall{Op: "signUp", Username: req.Username, Request: req})
	if f.SignUpErr != nil {
		return auth.User{}, f.SignUpErr
	}
	return auth.User{Username: req.Username}, nil
}

func (f *FakeAuthClient) ConfirmSignUp(_ context.Context, username, code string) error {
	f.Calls = append(f.Calls, AuthCall{Op: "confirmSignUp", Username: username, Code: code})
	return f.ConfirmErr
}

func (f *FakeAuthClient) ResendSignUp(_ context.Context, username string) error {
	f.Calls = append(f.Calls, AuthCall{Op: "resendSignUp", Username: username})
	return f.ResendErr
}

func (f *FakeAuthClient) SignIn(_ context.Context, username, password string) (auth.Session, error) {
	f.Calls = append(f.Calls, AuthCall{Op: "signIn", Username: username, Password: password})
	if f.SignInErr != nil {
		return auth.Session{}, f.SignInErr
	}
	return auth.Session{Username: username}, nil
}

// CallOps returns the recorded operation names in order.
func (f *FakeAuthClient) CallOps() []string {
	out := make([]string, 0, len(f.Calls))
	for _, call := range f.Calls {
		out = append(out, call.Op)
	}
	return out
}

// MustParseConfig parses a YAML configuration, failing the test on error.
func MustParseConfig(t *testing.T, raw string) config.Config {
	t.Helper()

	cfg, err := config.Parse([]byte(raw))
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	return cfg
}

// DiffFields fails the test when two field sets differ, printing the diff.
func DiffFields(t *testing.T, want, got model.FieldSet) {
	t.Helper()

	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("field set mismatch (-want +got):\n%s", diff)
	}
}
