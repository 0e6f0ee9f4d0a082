package model

import "testing"

func TestDefaultLabeler(t *testing.T) {
	cases := map[string]string{
		"":               "",
		"email":          "Email",
		"first_name":     "First Name",
		"firstName":      "First Name",
		"preferred-name": "Preferred Name",
		"address2":       "Address 2",
		"API_token":      "Api Token",
	}
	for key, want := range cases {
		if got := DefaultLabeler(key); got != want {
			t.Fatalf("%q: expected %q, got %q", key, want, got)
		}
	}
}

func TestFieldSetFindAndClone(t *testing.T) {
	set := FieldSet{
		{Key: "one", Label: "One"},
		{Key: "two", Label: "Two"},
	}

	if _, ok := set.Find("missing"); ok {
		t.Fatalf("expected missing key to report false")
	}
	field, ok := set.Find("two")
	if !ok || field.Label != "Two" {
		t.Fatalf("find mismatch: %v %v", field, ok)
	}

	clone := set.Clone()
	clone[0].Label = "mutated"
	if set[0].Label != "One" {
		t.Fatalf("clone shares backing storage with the original")
	}

	if got := FieldSet(nil).Clone(); got != nil {
		t.Fatalf("expected nil clone for nil set, got %v", got)
	}
}
