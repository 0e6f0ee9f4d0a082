package config

import (
	"github.com/goliatone/go-signup/pkg/model"
)

const defaultHeader = "Create a new account"

// Config captures every caller-tunable aspect of the sign-up form. The zero
// value is usable: built-in defaults for the username strategy, the standard
// header, and the +1 dial code fallback.
type Config struct {
	// Header is the form title. Defaults to "Create a new account".
	Header string `yaml:"header,omitempty"`
	// UsernameAttribute selects the primary identifier strategy. Defaults to
	// username.
	UsernameAttribute model.UsernameAttribute `yaml:"usernameAttribute,omitempty"`
	// SignUpFields supplies custom fields. They override defaults sharing the
	// same key.
	SignUpFields []model.Field `yaml:"signUpFields,omitempty"`
	// HiddenDefaults removes built-in default fields by key.
	HiddenDefaults []string `yaml:"hiddenDefaults,omitempty"`
	// HideAllDefaults drops every built-in default field.
	HideAllDefaults bool `yaml:"hideAllDefaults,omitempty"`
	// DefaultCountryCode preselects the phone dial code, e.g. "44". Unknown
	// codes fall back to +1.
	DefaultCountryCode string `yaml:"defaultCountryCode,omitempty"`
}

// HeaderOrDefault returns the configured header or the built-in one.
func (c Config) HeaderOrDefault() string {
	if c.Header != "" {
		return c.Header
	}
	return defaultHeader
}

// Strategy returns the configured username strategy, defaulting to username.
func (c Config) Strategy() model.UsernameAttribute {
	switch c.UsernameAttribute {
	case model.UsernameAttributeEmail, model.UsernameAttributePhoneNumber:
		return c.UsernameAttribute
	default:
		return model.UsernameAttributeUsername
	}
}

// ResolveConfig converts the caller configuration into the shape the field
// resolver consumes.
func (c Config) ResolveConfig() model.ResolveConfig {
	return model.ResolveConfig{
		SignUpFields:    c.SignUpFields,
		HiddenDefaults:  c.HiddenDefaults,
		HideAllDefaults: c.HideAllDefaults,
	}
}
