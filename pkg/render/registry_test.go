package render

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
)

type stubRenderer struct {
	name string
}

func (s stubRenderer) Name() string        { return s.name }
func (s stubRenderer) ContentType() string { return "text/plain" }
func (s stubRenderer) Render(context.Context, Form, RenderOptions) ([]byte, error) {
	return []byte(s.name), nil
}

func TestRegistryRegisterAndGet(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(stubRenderer{name: "vanilla"}); err != nil {
		t.Fatalf("register: %v", err)
	}

	renderer, err := registry.Get("vanilla")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if renderer.Name() != "vanilla" {
		t.Fatalf("name mismatch: got %q", renderer.Name())
	}
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "tui"})

	if err := registry.Register(stubRenderer{name: "tui"}); err == nil {
		t.Fatalf("expected duplicate registration to fail")
	}
}

func TestRegistryRejectsInvalid(t *testing.T) {
	registry := NewRegistry()

	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer to fail")
	}
	if err := registry.Register(stubRenderer{}); err == nil {
		t.Fatalf("expected unnamed renderer to fail")
	}
}

func TestRegistryGetUnknown(t *testing.T) {
	if _, err := NewRegistry().Get("missing"); err == nil {
		t.Fatalf("expected unknown renderer to fail")
	}
}

func TestRegistryListSorted(t *testing.T) {
	registry := NewRegistry()
	registry.MustRegister(stubRenderer{name: "vanilla"})
	registry.MustRegister(stubRenderer{name: "tui"})
	registry.MustRegister(stubRenderer{name: "json"})

	want := []string{"json", "tui", "vanilla"}
	if diff := cmp.Diff(want, registry.List()); diff != "" {
		t.Fatalf("list mismatch (-want +got):\n%s", diff)
	}
}

func TestTranslatorT(t *testing.T) {
	var nilTranslator Translator
	if got := nilTranslator.T("Email"); got != "Email" {
		t.Fatalf("nil translator should pass through, got %q", got)
	}

	upper := Translator(func(msg string) string {
		if msg == "Email" {
			return "Courriel"
		}
		return ""
	})
	if got := upper.T("Email"); got != "Courriel" {
		t.Fatalf("expected translation, got %q", got)
	}
	if got := upper.T("Password"); got != "Password" {
		t.Fatalf("empty translation should fall back to input, got %q", got)
	}
}
