// Package phone composes country dial codes and local line numbers into the
// single E.164-style value the phone_number attribute carries.
package phone

import "strings"

// Number is the two-part phone capture: the selected dial code and the local
// line number as typed.
type Number struct {
	DialCode   string
	LineNumber string
}

// Empty reports whether no line number was captured. A dial code alone does
// not count as input.
func (n Number) Empty() bool {
	return strings.TrimSpace(n.LineNumber) == ""
}

// E164 joins dial code and line number, stripping the separators users
// commonly type. Returns "" when no line number was captured.
func (n Number) E164() string {
	if n.Empty() {
		return ""
	}
	dial := strings.TrimSpace(n.DialCode)
	if dial == "" {
		dial = DefaultDialCode("")
	}
	if !strings.HasPrefix(dial, "+") {
		dial = "+" + dial
	}
	var line strings.Builder
	for _, r := range n.LineNumber {
		if r >= '0' && r <= '9' {
			line.WriteRune(r)
		}
	}
	return dial + line.String()
}

// DefaultDialCode maps a bare country calling code ("44") to its "+44" form.
// Unknown or empty codes fall back to "+1".
func DefaultDialCode(countryCode string) string {
	code := strings.TrimSpace(countryCode)
	if code == "" {
		return "+1"
	}
	if !strings.HasPrefix(code, "+") {
		code = "+" + code
	}
	for _, known := range DialCodes() {
		if known == code {
			return code
		}
	}
	return "+1"
}
