// Package render defines the contract between the resolved sign-up field set
// and its presentation layers (HTML, terminal prompts).
package render

import (
	"context"

	theme "github.com/goliatone/go-theme"

	"github.com/goliatone/go-signup/pkg/model"
)

// Form is the view renderers consume: the frozen field set for one
// configuration snapshot plus its display chrome.
type Form struct {
	// Header is the form title.
	Header string
	// Fields is the resolved, ordered field set.
	Fields model.FieldSet
	// DefaultDialCode preselects the phone dial code, "+1" style.
	DefaultDialCode string
}

// Translator maps a display string to its localized form. A nil Translator
// passes strings through unchanged.
type Translator func(string) string

// T applies the translator, passing input through when it is nil or returns
// an empty result.
func (t Translator) T(msg string) string {
	if t == nil {
		return msg
	}
	if translated := t(msg); translated != "" {
		return translated
	}
	return msg
}

// RenderOptions describe per-request data renderers can use to customise
// their output without touching the resolved field set.
type RenderOptions struct {
	// Values pre-populates rendered controls keyed by field key.
	Values map[string]string
	// Errors surfaces validation feedback keyed by field key.
	Errors map[string][]string
	// Translator localizes user-visible labels, placeholders, and chrome.
	Translator Translator
	// Theme carries resolved go-theme configuration (class tokens, CSS
	// variables, asset URLs). Nil renders unthemed output.
	Theme *theme.RendererConfig
}

// Renderer converts a Form into a byte representation (HTML, collected input
// serialized as JSON, etc.).
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form Form, options RenderOptions) ([]byte, error)
}
