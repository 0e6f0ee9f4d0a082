// Package vanilla renders the sign-up form as dependency-free HTML. Labels,
// placeholders, and the header pass through a strict sanitization policy
// since they originate in caller configuration.
package vanilla

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/flosch/pongo2/v6"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
	"github.com/goliatone/go-signup/pkg/render"
)

const (
	formTemplate = "templates/form.tmpl"

	themeAssetStylesheet = "signup.stylesheet"
	themeTokenFormClass  = "form"
)

// Option configures the renderer before construction.
type Option func(*config)

type config struct {
	templateFS fs.FS
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// Renderer implements render.Renderer over a pongo2 template set.
type Renderer struct {
	mu        sync.RWMutex
	set       *pongo2.TemplateSet
	templates map[string]*pongo2.Template
	policy    *bluemonday.Policy
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}
	if cfg.templateFS == nil {
		return nil, errors.New("vanilla renderer: template fs is required")
	}

	return &Renderer{
		set:       pongo2.NewSet("signup", pongo2.NewFSLoader(cfg.templateFS)),
		templates: make(map[string]*pongo2.Template),
		policy:    bluemonday.StrictPolicy(),
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render produces the HTML for the supplied form view.
func (r *Renderer) Render(ctx context.Context, form render.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("vanilla renderer: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	tmpl, err := r.template(formTemplate)
	if err != nil {
		return nil, err
	}

	out, err := tmpl.Execute(r.buildContext(form, opts))
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: execute template: %w", err)
	}
	return []byte(out), nil
}

func (r *Renderer) template(name string) (*pongo2.Template, error) {
	r.mu.RLock()
	tmpl, ok := r.templates[name]
	r.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if tmpl, ok := r.templates[name]; ok {
		return tmpl, nil
	}
	tmpl, err := r.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: load template %q: %w", name, err)
	}
	r.templates[name] = tmpl
	return tmpl, nil
}

func (r *Renderer) buildContext(form render.Form, opts render.RenderOptions) pongo2.Context {
	t := opts.Translator

	fields := make([]map[string]any, 0, len(form.Fields))
	for i, field := range form.Fields {
		entry := map[string]any{
			"key":         field.Key,
			"label":       r.policy.Sanitize(t.T(field.Label)),
			"placeholder": r.policy.Sanitize(t.T(field.Placeholder)),
			"type":        string(field.Type),
			"required":    field.Required,
			"autofocus":   i == 0,
			"phone":       field.Key == model.KeyPhoneNumber,
			"value":       opts.Values[field.Key],
			"errors":      sanitizeAll(r.policy, opts.Errors[field.Key]),
		}
		fields = append(fields, entry)
	}

	dial := form.DefaultDialCode
	if dial == "" {
		dial = phone.DefaultDialCode("")
	}

	ctx := pongo2.Context{
		"header":            r.policy.Sanitize(t.T(form.Header)),
		"fields":            fields,
		"dial_codes":        phone.DialCodes(),
		"default_dial_code": dial,
		"submit_label":      t.T("Create Account"),
	}
	mergeThemeContext(ctx, opts.Theme)
	return ctx
}

func sanitizeAll(policy *bluemonday.Policy, messages []string) []string {
	if len(messages) == 0 {
		return nil
	}
	out := make([]string, 0, len(messages))
	for _, msg := range messages {
		out = append(out, policy.Sanitize(msg))
	}
	return out
}

func mergeThemeContext(ctx pongo2.Context, cfg *theme.RendererConfig) {
	if cfg == nil {
		return
	}
	ctx["theme_name"] = cfg.Theme
	ctx["theme_variant"] = cfg.Variant
	ctx["theme_class"] = cfg.Tokens[themeTokenFormClass]
	ctx["css_vars_style"] = cssVarsStyle(cfg.CSSVars)
	if cfg.AssetURL != nil {
		if url := strings.TrimSpace(cfg.AssetURL(themeAssetStylesheet)); url != "" {
			ctx["stylesheet_url"] = url
		}
	}
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString(":root {\n")
	for _, key := range keys {
		b.WriteString(key)
		b.WriteString(": ")
		b.WriteString(vars[key])
		b.WriteString(";\n")
	}
	b.WriteString("}")
	return b.String()
}
