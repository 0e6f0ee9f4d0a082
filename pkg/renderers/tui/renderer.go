// Package tui collects sign-up input through interactive terminal prompts.
// It renders the same frozen field set the HTML renderer consumes, so both
// front-ends always present identical fields in identical order.
package tui

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
	"github.com/goliatone/go-signup/pkg/render"
)

// Option configures the TUI renderer.
type Option func(*Renderer)

// WithPromptDriver overrides the prompt driver used by the renderer.
func WithPromptDriver(driver PromptDriver) Option {
	return func(r *Renderer) {
		if driver != nil {
			r.driver = driver
		}
	}
}

// Renderer implements render.Renderer for terminal-driven sessions: prompts
// walk the field set in order and the collected values serialize as JSON.
type Renderer struct {
	driver PromptDriver
}

// New constructs a TUI renderer with the survey-backed driver.
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		driver: newSurveyDriver(),
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if r.driver == nil {
		return nil, errors.New("tui: prompt driver is required")
	}
	return r, nil
}

func (r *Renderer) Name() string {
	return "tui"
}

func (r *Renderer) ContentType() string {
	return "application/json"
}

// Render prompts for every field and returns the collected values as JSON.
// The phone number is emitted pre-composed under the phone_number key.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	values, number, err := r.Collect(ctx, form, opts)
	if err != nil {
		return nil, err
	}

	out := make(map[string]string, len(values)+1)
	for key, value := range values {
		out[key] = value
	}
	if !number.Empty() {
		out[model.KeyPhoneNumber] = number.E164()
	}
	return json.Marshal(out)
}

// Collect runs the prompt session and returns the raw captured values plus
// the two-part phone capture, ready to hand to the submission pipeline.
func (r *Renderer) Collect(ctx context.Context, form render.Form, opts render.RenderOptions) (map[string]string, phone.Number, error) {
	if ctx == nil {
		return nil, phone.Number{}, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, phone.Number{}, err
	}

	t := opts.Translator
	if header := strings.TrimSpace(t.T(form.Header)); header != "" {
		if err := r.driver.Info(ctx, header); err != nil {
			return nil, phone.Number{}, err
		}
	}

	values := make(map[string]string, len(form.Fields))
	var number phone.Number

	for _, field := range form.Fields {
		if field.Key == model.KeyPhoneNumber {
			captured, err := r.promptPhone(ctx, field, form.DefaultDialCode, t)
			if err != nil {
				return nil, phone.Number{}, err
			}
			number = captured
			continue
		}
		value, err := r.promptField(ctx, field, opts.Values[field.Key], t)
		if err != nil {
			return nil, phone.Number{}, err
		}
		values[field.Key] = value
	}

	return values, number, nil
}

func (r *Renderer) promptField(ctx context.Context, field model.Field, prefill string, t render.Translator) (string, error) {
	label := promptLabel(field, t)
	cfg := InputConfig{
		Message: label,
		Default: prefill,
		Help:    t.T(field.Placeholder),
	}

	for {
		var value string
		var err error
		if field.Type == model.FieldTypePassword {
			value, err = r.driver.Password(ctx, cfg)
		} else {
			value, err = r.driver.Input(ctx, cfg)
		}
		if err != nil {
			return "", err
		}
		if field.Required && strings.TrimSpace(value) == "" {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", t.T(field.Label))); err != nil {
				return "", err
			}
			continue
		}
		return value, nil
	}
}

func (r *Renderer) promptPhone(ctx context.Context, field model.Field, defaultDial string, t render.Translator) (phone.Number, error) {
	codes := phone.DialCodes()
	defaultIdx := 0
	if defaultDial == "" {
		defaultDial = phone.DefaultDialCode("")
	}
	for i, code := range codes {
		if code == defaultDial {
			defaultIdx = i
			break
		}
	}

	idx, err := r.driver.Select(ctx, SelectConfig{
		Message:      t.T("Dial code"),
		Options:      codes,
		DefaultIndex: defaultIdx,
	})
	if err != nil {
		return phone.Number{}, err
	}
	if idx < 0 || idx >= len(codes) {
		idx = defaultIdx
	}

	for {
		line, err := r.driver.Input(ctx, InputConfig{
			Message: promptLabel(field, t),
			Help:    t.T(field.Placeholder),
		})
		if err != nil {
			return phone.Number{}, err
		}
		if field.Required && strings.TrimSpace(line) == "" {
			if err := r.driver.Info(ctx, fmt.Sprintf("%s is required", t.T(field.Label))); err != nil {
				return phone.Number{}, err
			}
			continue
		}
		return phone.Number{DialCode: codes[idx], LineNumber: line}, nil
	}
}

func promptLabel(field model.Field, t render.Translator) string {
	label := t.T(field.Label)
	if field.Required {
		return label + " *"
	}
	return label
}
