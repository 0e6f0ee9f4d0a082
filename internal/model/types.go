package model

// FieldType is the simplified enum for sign-up input kinds.
type FieldType string

const (
	FieldTypeText     FieldType = "text"
	FieldTypePassword FieldType = "password"
	FieldTypeEmail    FieldType = "email"
	FieldTypeTel      FieldType = "tel"
)

// UsernameAttribute selects which identifier acts as the primary account
// name. It determines the built-in default field set and the label used to
// resolve the username at submission time.
type UsernameAttribute string

const (
	UsernameAttributeUsername    UsernameAttribute = "username"
	UsernameAttributeEmail       UsernameAttribute = "email"
	UsernameAttributePhoneNumber UsernameAttribute = "phone_number"
)

// Reserved field keys with dedicated handling in the submission pipeline.
const (
	KeyUsername    = "username"
	KeyPassword    = "password"
	KeyEmail       = "email"
	KeyPhoneNumber = "phone_number"
)

// Field models a single collectible account attribute. Struct fields are
// annotated so configuration loaders and snapshots can serialise them
// directly.
type Field struct {
	// Key identifies the attribute the collected value maps to. Unique within
	// a resolved field set.
	Key string `json:"key" yaml:"key"`
	// Label is the display name. Derived from Key when omitted.
	Label string `json:"label,omitempty" yaml:"label,omitempty"`
	// Required marks the field as mandatory at submission time.
	Required bool `json:"required" yaml:"required"`
	// DisplayOrder positions the field during resolution. Zero means
	// unordered; unordered fields always sort after ordered ones.
	DisplayOrder int `json:"displayOrder,omitempty" yaml:"displayOrder,omitempty"`
	// Type selects the input kind used by renderers.
	Type FieldType `json:"type,omitempty" yaml:"type,omitempty"`
	// Custom namespaces the attribute key with the "custom:" prefix on
	// submission.
	Custom bool `json:"custom,omitempty" yaml:"custom,omitempty"`
	// Placeholder is an optional display hint.
	Placeholder string `json:"placeholder,omitempty" yaml:"placeholder,omitempty"`
}

// Ordered reports whether the field carries an explicit display order.
func (f Field) Ordered() bool {
	return f.DisplayOrder > 0
}

// FieldSet is the resolved, ordered, deduplicated sequence of fields for one
// configuration snapshot. Render and submit paths must observe the same
// FieldSet instance.
type FieldSet []Field

// Find returns the field with the given key.
func (s FieldSet) Find(key string) (Field, bool) {
	for _, field := range s {
		if field.Key == key {
			return field, true
		}
	}
	return Field{}, false
}

// Keys returns the field keys in set order.
func (s FieldSet) Keys() []string {
	out := make([]string, 0, len(s))
	for _, field := range s {
		out = append(out, field.Key)
	}
	return out
}

// Clone returns an independent copy so callers can hand the set to renderers
// without sharing backing storage.
func (s FieldSet) Clone() FieldSet {
	if s == nil {
		return nil
	}
	out := make(FieldSet, len(s))
	copy(out, s)
	return out
}
