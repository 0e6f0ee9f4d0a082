// Package signup wires an account-creation form end to end: default field
// sets per username strategy, deterministic merging and ordering of custom
// fields, required-field validation, signup payload construction, and
// delegation to an external authentication capability.
package signup

import (
	"github.com/goliatone/go-signup/pkg/config"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/orchestrator"
	"github.com/goliatone/go-signup/pkg/render"
)

// Field describes one collectible account attribute.
type Field = model.Field

// FieldSet is the resolved, ordered field sequence for one configuration
// snapshot.
type FieldSet = model.FieldSet

// Config captures caller-tunable form behaviour.
type Config = config.Config

// Input is one submission attempt.
type Input = orchestrator.Input

// Option customises the orchestrator.
type Option = orchestrator.Option

// RenderOptions carries per-request rendering data.
type RenderOptions = render.RenderOptions

// New constructs a sign-up orchestrator, mirroring the orchestrator package
// constructor from the module root for convenience.
func New(options ...Option) *orchestrator.Orchestrator {
	return orchestrator.New(options...)
}

// WithConfig applies a sign-up configuration at construction time.
func WithConfig(cfg Config) Option {
	return orchestrator.WithConfig(cfg)
}

// Resolve computes the ordered field set for a configuration without
// constructing an orchestrator; render and submit paths must share one
// resolved set per configuration snapshot.
func Resolve(cfg Config) FieldSet {
	return model.Resolve(model.DefaultFields(cfg.Strategy()), cfg.ResolveConfig())
}
