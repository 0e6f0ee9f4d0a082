package signup

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/phone"
	"github.com/goliatone/go-signup/pkg/testsupport"
)

func TestResolveMatchesOrchestratorFields(t *testing.T) {
	cfg := Config{
		UsernameAttribute: model.UsernameAttributeEmail,
		SignUpFields: []Field{
			{Key: "company", Label: "Company", Custom: true, DisplayOrder: 4},
		},
	}

	resolved := Resolve(cfg)
	fromOrchestrator := New(WithConfig(cfg)).Fields()

	if diff := cmp.Diff(resolved, fromOrchestrator); diff != "" {
		t.Fatalf("resolve and orchestrator disagree (-resolve +orchestrator):\n%s", diff)
	}
}

func TestEndToEndSignUpFlow(t *testing.T) {
	client := &testsupport.FakeAuthClient{}
	var states []string
	gen := New(
		WithConfig(Config{UsernameAttribute: model.UsernameAttributeEmail}),
		orchestrator.WithAuthClient(client),
		orchestrator.WithStateSink(func(state string, _ any) {
			states = append(states, state)
		}),
	)

	in := Input{
		Values: map[string]string{
			model.KeyEmail:    "jane@example.com",
			model.KeyPassword: "hunter22",
		},
		Phone: phone.Number{DialCode: "+1", LineNumber: "5551234"},
	}

	if err := gen.Submit(context.Background(), in); err != nil {
		t.Fatalf("submit: %v", err)
	}
	if err := gen.Confirm(context.Background(), "jane@example.com", "123456"); err != nil {
		t.Fatalf("confirm: %v", err)
	}

	wantCalls := []string{"signUp", "confirmSignUp", "signIn"}
	if diff := cmp.Diff(wantCalls, client.CallOps()); diff != "" {
		t.Fatalf("call sequence mismatch (-want +got):\n%s", diff)
	}
	wantStates := []string{orchestrator.StateConfirmSignUp, orchestrator.StateSignedIn}
	if diff := cmp.Diff(wantStates, states); diff != "" {
		t.Fatalf("state sequence mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitWithoutClientFailsLocally(t *testing.T) {
	gen := New(WithConfig(Config{}))

	in := Input{
		Values: map[string]string{
			model.KeyUsername: "jdoe",
			model.KeyPassword: "hunter22",
			model.KeyEmail:    "jane@example.com",
		},
		Phone: phone.Number{DialCode: "+1", LineNumber: "5551234"},
	}

	err := gen.Submit(context.Background(), in)
	if !errors.Is(err, orchestrator.ErrAuthUnavailable) {
		t.Fatalf("expected ErrAuthUnavailable, got %v", err)
	}
	if !orchestrator.IsLocal(err) {
		t.Fatalf("expected a local error classification")
	}
}
