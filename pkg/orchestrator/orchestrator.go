// Package orchestrator coordinates the sign-up pipeline: resolve the field
// set once per configuration, validate collected input, build the signup
// request, and delegate to the external authentication capability while
// reporting state transitions to the caller.
package orchestrator

import (
	"context"
	"errors"

	"github.com/goliatone/go-signup/pkg/auth"
	"github.com/goliatone/go-signup/pkg/config"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
	"github.com/goliatone/go-signup/pkg/validation"
)

// Caller-visible states reported through the StateSink.
const (
	StateConfirmSignUp = "confirmSignUp"
	StateSignedIn      = "signedIn"
)

// StateSink receives state transitions with an optional payload (the pending
// username for confirmSignUp, the session for signedIn).
type StateSink func(state string, payload any)

// Translator maps a display string to its localized form. Nil means
// pass-through.
type Translator func(string) string

// Logger is the minimal reporting surface the orchestrator needs. The only
// non-fatal event is the custom-prefix warning during payload construction.
type Logger interface {
	Debugf(format string, args ...any)
	Warnf(format string, args ...any)
}

type nopLogger struct{}

func (nopLogger) Debugf(string, ...any) {}
func (nopLogger) Warnf(string, ...any)  {}

// Option customises the orchestrator configuration.
type Option func(*Orchestrator)

// WithAuthClient injects the external authentication capability.
func WithAuthClient(client auth.Client) Option {
	return func(o *Orchestrator) {
		o.client = client
	}
}

// WithStateSink registers the caller's state transition receiver.
func WithStateSink(sink StateSink) Option {
	return func(o *Orchestrator) {
		o.sink = sink
	}
}

// WithTranslator injects the localization lookup applied to user-visible
// labels in error messages.
func WithTranslator(translate Translator) Option {
	return func(o *Orchestrator) {
		o.translate = translate
	}
}

// WithLogger injects the reporting interface. Defaults to a no-op.
func WithLogger(log Logger) Option {
	return func(o *Orchestrator) {
		if log != nil {
			o.log = log
		}
	}
}

// WithConfig applies a sign-up configuration during construction, resolving
// the field set immediately.
func WithConfig(cfg config.Config) Option {
	return func(o *Orchestrator) {
		o.Configure(cfg)
	}
}

// Input is one submission attempt: the values captured per field key plus the
// separately captured phone number.
type Input struct {
	Values map[string]string
	Phone  phone.Number
}

// credentials captured from the last successful submission, used to chain
// sign-in after confirmation.
type credentials struct {
	email    string
	password string
}

// Orchestrator owns the frozen field set for the current configuration and
// the submission pipeline over it. It is driven by a single caller at a time;
// concurrent submissions are not guarded against, matching the one-action-at-
// a-time UI flow it backs.
type Orchestrator struct {
	client    auth.Client
	sink      StateSink
	translate Translator
	log       Logger

	cfg      config.Config
	strategy model.UsernameAttribute
	fields   model.FieldSet
	creds    credentials
}

// New constructs an Orchestrator applying any provided options. Without
// WithConfig it starts from the zero configuration (username strategy,
// built-in defaults).
func New(options ...Option) *Orchestrator {
	o := &Orchestrator{
		log: nopLogger{},
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(o)
	}
	if o.fields == nil {
		o.Configure(config.Config{})
	}
	return o
}

// Configure resolves the field set for the supplied configuration and freezes
// it. Render and submit both observe this snapshot until the next Configure
// call, so displayed fields can never desynchronise from submitted ones.
func (o *Orchestrator) Configure(cfg config.Config) {
	o.cfg = cfg
	o.strategy = cfg.Strategy()
	o.fields = model.Resolve(model.DefaultFields(o.strategy), cfg.ResolveConfig())
}

// Fields returns a copy of the frozen field set for rendering.
func (o *Orchestrator) Fields() model.FieldSet {
	return o.fields.Clone()
}

// Header returns the configured form title.
func (o *Orchestrator) Header() string {
	return o.cfg.HeaderOrDefault()
}

// DialCode returns the preselected phone dial code.
func (o *Orchestrator) DialCode() string {
	return phone.DefaultDialCode(o.cfg.DefaultCountryCode)
}

// UsernameLabel returns the label identifying the username-bearing field
// under the active strategy.
func (o *Orchestrator) UsernameLabel() string {
	return model.UsernameLabel(o.strategy)
}

// Validate runs the required-field check against the frozen field set. Pure;
// surfacing the result is the caller's concern.
func (o *Orchestrator) Validate(in Input) validation.Result {
	return validation.CheckRequired(o.fields, in.Values, in.Phone)
}

// Submit runs validate, builds the signup request, and delegates to the
// authentication client. On success the orchestrator transitions to
// confirmSignUp carrying the returned username. Validation and payload
// errors are terminal for this attempt and never reach the network.
// Validation runs before the client-presence check so the user always sees
// the missing-field message first.
func (o *Orchestrator) Submit(ctx context.Context, in Input) error {
	if result := o.Validate(in); !result.Valid {
		labels := make([]string, 0, len(result.Missing))
		for _, issue := range result.Missing {
			labels = append(labels, o.t(issue.Label))
		}
		return &ValidationError{Labels: labels}
	}

	if o.client == nil {
		return ErrAuthUnavailable
	}

	req, err := BuildRequest(o.fields, in.Values, in.Phone, o.UsernameLabel(), o.strategy, o.log)
	if err != nil {
		return err
	}

	user, err := o.client.SignUp(ctx, req)
	if err != nil {
		return &RemoteError{Op: "sign up", Err: err}
	}

	o.creds = credentials{
		email:    in.Values[model.KeyEmail],
		password: in.Values[model.KeyPassword],
	}
	o.transition(StateConfirmSignUp, user.Username)
	return nil
}

// Confirm completes registration with the emailed code, then chains into a
// sign-in using the credentials captured at submission and transitions to
// signedIn with the resulting session.
func (o *Orchestrator) Confirm(ctx context.Context, username, code string) error {
	if o.client == nil {
		return ErrAuthUnavailable
	}
	if err := o.client.ConfirmSignUp(ctx, username, code); err != nil {
		return &RemoteError{Op: "confirm sign up", Err: err}
	}

	session, err := o.client.SignIn(ctx, o.creds.email, o.creds.password)
	if err != nil {
		return &RemoteError{Op: "sign in", Err: err}
	}
	o.transition(StateSignedIn, session)
	return nil
}

// Resend requests a fresh confirmation code for the pending username.
func (o *Orchestrator) Resend(ctx context.Context, username string) error {
	if o.client == nil {
		return ErrAuthUnavailable
	}
	if err := o.client.ResendSignUp(ctx, username); err != nil {
		return &RemoteError{Op: "resend sign up", Err: err}
	}
	o.log.Debugf("confirmation code resent to %s", username)
	return nil
}

func (o *Orchestrator) transition(state string, payload any) {
	if o.sink == nil {
		return
	}
	o.sink(state, payload)
}

func (o *Orchestrator) t(msg string) string {
	if o.translate == nil {
		return msg
	}
	return o.translate(msg)
}

// IsLocal reports whether err was raised before any external call was made
// (validation, missing username, or missing auth client).
func IsLocal(err error) bool {
	if err == nil {
		return false
	}
	var validationErr *ValidationError
	var usernameErr *MissingUsernameError
	return errors.Is(err, ErrAuthUnavailable) || errors.As(err, &validationErr) || errors.As(err, &usernameErr)
}
