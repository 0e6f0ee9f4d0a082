// Package validation implements the pre-submission required-field check. It
// is a pure pass over the resolved field set; surfacing the result to the
// user stays with the caller.
package validation

import (
	"strings"

	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
)

// Issue names one required field that is missing input.
type Issue struct {
	Key   string `json:"key"`
	Label string `json:"label"`
}

// Result captures the validation outcome for one submission attempt.
type Result struct {
	Valid   bool    `json:"valid"`
	Missing []Issue `json:"missing,omitempty"`
}

// CheckRequired verifies that every required field has input. The phone field
// is excluded from the generic key/value pass and checked against the
// separately captured phone number instead.
func CheckRequired(fields model.FieldSet, values map[string]string, number phone.Number) Result {
	result := Result{Valid: true}
	for _, field := range fields {
		if !field.Required {
			continue
		}
		if field.Key == model.KeyPhoneNumber {
			if number.Empty() {
				result.fail(field)
			}
			continue
		}
		if strings.TrimSpace(values[field.Key]) == "" {
			result.fail(field)
		}
	}
	return result
}

func (r *Result) fail(field model.Field) {
	r.Valid = false
	r.Missing = append(r.Missing, Issue{Key: field.Key, Label: field.Label})
}

// Labels returns the labels of every missing field, in field-set order.
func (r Result) Labels() []string {
	if len(r.Missing) == 0 {
		return nil
	}
	out := make([]string, 0, len(r.Missing))
	for _, issue := range r.Missing {
		out = append(out, issue.Label)
	}
	return out
}

// Message renders the user-facing summary for a failed check.
func (r Result) Message() string {
	if r.Valid {
		return ""
	}
	return "The following fields need to be filled out: " + strings.Join(r.Labels(), ", ")
}
