package tui

import (
	"context"
	"encoding/json"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
	"github.com/goliatone/go-signup/pkg/render"
)

// scriptedDriver replays canned answers and records every prompt message.
type scriptedDriver struct {
	inputs    []string
	passwords []string
	selects   []int

	prompts []string
	infos   []string
}

func (d *scriptedDriver) Input(_ context.Context, cfg InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.inputs) == 0 {
		return "", nil
	}
	answer := d.inputs[0]
	d.inputs = d.inputs[1:]
	return answer, nil
}

func (d *scriptedDriver) Password(_ context.Context, cfg InputConfig) (string, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.passwords) == 0 {
		return "", nil
	}
	answer := d.passwords[0]
	d.passwords = d.passwords[1:]
	return answer, nil
}

func (d *scriptedDriver) Select(_ context.Context, cfg SelectConfig) (int, error) {
	d.prompts = append(d.prompts, cfg.Message)
	if len(d.selects) == 0 {
		return cfg.DefaultIndex, nil
	}
	idx := d.selects[0]
	d.selects = d.selects[1:]
	return idx, nil
}

func (d *scriptedDriver) Info(_ context.Context, msg string) error {
	d.infos = append(d.infos, msg)
	return nil
}

func testForm() render.Form {
	return render.Form{
		Header: "Create a new account",
		Fields: model.FieldSet{
			{Key: model.KeyEmail, Label: "Email", Required: true, Type: model.FieldTypeEmail},
			{Key: model.KeyPassword, Label: "Password", Required: true, Type: model.FieldTypePassword},
			{Key: model.KeyPhoneNumber, Label: "Phone Number", Required: true, Type: model.FieldTypeTel},
		},
		DefaultDialCode: "+44",
	}
}

func TestCollectWalksFieldsInOrder(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"jane@example.com", "7911123456"},
		passwords: []string{"hunter22"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values, number, err := renderer.Collect(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	wantValues := map[string]string{
		model.KeyEmail:    "jane@example.com",
		model.KeyPassword: "hunter22",
	}
	if diff := cmp.Diff(wantValues, values); diff != "" {
		t.Fatalf("values mismatch (-want +got):\n%s", diff)
	}
	if number.DialCode != "+44" || number.LineNumber != "7911123456" {
		t.Fatalf("phone capture mismatch: %+v", number)
	}

	wantPrompts := []string{"Email *", "Password *", "Dial code", "Phone Number *"}
	if diff := cmp.Diff(wantPrompts, driver.prompts); diff != "" {
		t.Fatalf("prompt order mismatch (-want +got):\n%s", diff)
	}
	if len(driver.infos) == 0 || driver.infos[0] != "Create a new account" {
		t.Fatalf("expected the header to show first, got %v", driver.infos)
	}
}

func TestCollectRepromptsRequiredFields(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"", "  ", "jane@example.com", "7911123456"},
		passwords: []string{"hunter22"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	values, _, err := renderer.Collect(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	if values[model.KeyEmail] != "jane@example.com" {
		t.Fatalf("expected the third answer to be accepted, got %q", values[model.KeyEmail])
	}
	required := 0
	for _, msg := range driver.infos {
		if strings.Contains(msg, "Email is required") {
			required++
		}
	}
	if required != 2 {
		t.Fatalf("expected two re-prompt notices, got %v", driver.infos)
	}
}

func TestCollectPhoneDialCodeSelection(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"jane@example.com", "5551234"},
		passwords: []string{"hunter22"},
		selects:   []int{0},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, number, err := renderer.Collect(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	if number.DialCode != phone.DialCodes()[0] {
		t.Fatalf("expected the selected dial code, got %q", number.DialCode)
	}
}

func TestRenderSerializesJSON(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"jane@example.com", "7911123456"},
		passwords: []string{"hunter22"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	out, err := renderer.Render(context.Background(), testForm(), render.RenderOptions{})
	if err != nil {
		t.Fatalf("render: %v", err)
	}

	var payload map[string]string
	if err := json.Unmarshal(out, &payload); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	want := map[string]string{
		model.KeyEmail:       "jane@example.com",
		model.KeyPassword:    "hunter22",
		model.KeyPhoneNumber: "+447911123456",
	}
	if diff := cmp.Diff(want, payload); diff != "" {
		t.Fatalf("payload mismatch (-want +got):\n%s", diff)
	}
}

func TestCollectTranslatesPrompts(t *testing.T) {
	driver := &scriptedDriver{
		inputs:    []string{"jane@example.com", "7911123456"},
		passwords: []string{"hunter22"},
	}
	renderer, err := New(WithPromptDriver(driver))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	_, _, err = renderer.Collect(context.Background(), testForm(), render.RenderOptions{
		Translator: func(msg string) string {
			if msg == "Email" {
				return "Courriel"
			}
			return ""
		},
	})
	if err != nil {
		t.Fatalf("collect: %v", err)
	}

	if driver.prompts[0] != "Courriel *" {
		t.Fatalf("expected translated prompt, got %q", driver.prompts[0])
	}
}

func TestCollectContextCancelled(t *testing.T) {
	renderer, err := New(WithPromptDriver(&scriptedDriver{}))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, _, err := renderer.Collect(ctx, testForm(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected cancelled context to fail")
	}
}
