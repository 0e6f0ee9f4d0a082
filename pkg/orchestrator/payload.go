package orchestrator

import (
	"sort"
	"strings"

	"github.com/goliatone/go-signup/pkg/auth"
	"github.com/goliatone/go-signup/pkg/model"
	"github.com/goliatone/go-signup/pkg/phone"
)

const customPrefix = "custom:"

// reservedKeys never surface as signup attributes: they either have dedicated
// request slots (username, password), belong to the phone capture path
// (dial_code, phone_line_number), or are UI bookkeeping (checkedValue, error).
var reservedKeys = map[string]struct{}{
	model.KeyUsername:   {},
	model.KeyPassword:   {},
	"checkedValue":      {},
	"dial_code":         {},
	"phone_line_number": {},
	"error":             {},
}

// BuildRequest maps the collected input values onto a signup request:
// attribute prefixing for custom fields, E.164 phone composition, and
// username derivation from the field whose label matches usernameLabel.
//
// Callers are expected to have run validation first; BuildRequest only fails
// when no field can supply a username.
func BuildRequest(fields model.FieldSet, values map[string]string, number phone.Number, usernameLabel string, strategy model.UsernameAttribute, log Logger) (auth.SignUpRequest, error) {
	if log == nil {
		log = nopLogger{}
	}

	req := auth.SignUpRequest{
		Username:   seedUsername(values, strategy),
		Password:   values[model.KeyPassword],
		Attributes: make(map[string]string),
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		if _, reserved := reservedKeys[key]; reserved {
			continue
		}
		attrKey := key
		if needsCustomPrefix(key, fields, log) {
			attrKey = customPrefix + key
		}
		req.Attributes[attrKey] = values[key]
	}

	if !number.Empty() {
		req.Attributes[model.KeyPhoneNumber] = number.E164()
	}

	resolved := false
	for _, field := range fields {
		if field.Label != usernameLabel {
			continue
		}
		log.Debugf("using the value of %s as the username", field.Label)
		if value := req.Attributes[field.Key]; value != "" {
			req.Username = value
		}
		resolved = true
	}
	if !resolved && req.Username == "" {
		return auth.SignUpRequest{}, &MissingUsernameError{Label: usernameLabel}
	}

	return req, nil
}

// seedUsername picks the initial username from the strategy's primary key,
// falling back to an explicit username input and finally to the email input.
// The email fallback keeps fully customised field sets submittable under the
// username strategy when no field carries the username label.
func seedUsername(values map[string]string, strategy model.UsernameAttribute) string {
	if value := values[model.PrimaryKey(strategy)]; value != "" {
		return value
	}
	if value := values[model.KeyUsername]; value != "" {
		return value
	}
	return values[model.KeyEmail]
}

// needsCustomPrefix reports whether the attribute key must be namespaced.
// Keys that already carry the prefix are never prefixed again; when the
// field's custom flag disagrees with a manually entered prefix the prefix is
// retained and a warning logged.
func needsCustomPrefix(key string, fields model.FieldSet, log Logger) bool {
	field, _ := fields.Find(key)
	if !strings.HasPrefix(key, customPrefix) {
		return field.Custom
	}
	if !field.Custom {
		log.Warnf("custom prefix prepended to key %q but custom field flag is set to false; retaining manually entered prefix", key)
	}
	return false
}
