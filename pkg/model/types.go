package model

import internalmodel "github.com/goliatone/go-signup/internal/model"

// FieldType re-exports the internal FieldType enumeration.
type FieldType = internalmodel.FieldType

const (
	FieldTypeText     = internalmodel.FieldTypeText
	FieldTypePassword = internalmodel.FieldTypePassword
	FieldTypeEmail    = internalmodel.FieldTypeEmail
	FieldTypeTel      = internalmodel.FieldTypeTel
)

// UsernameAttribute re-exports the internal username strategy enumeration.
type UsernameAttribute = internalmodel.UsernameAttribute

const (
	UsernameAttributeUsername    = internalmodel.UsernameAttributeUsername
	UsernameAttributeEmail       = internalmodel.UsernameAttributeEmail
	UsernameAttributePhoneNumber = internalmodel.UsernameAttributePhoneNumber
)

const (
	KeyUsername    = internalmodel.KeyUsername
	KeyPassword    = internalmodel.KeyPassword
	KeyEmail       = internalmodel.KeyEmail
	KeyPhoneNumber = internalmodel.KeyPhoneNumber
)

type Field = internalmodel.Field
type FieldSet = internalmodel.FieldSet
type ResolveConfig = internalmodel.ResolveConfig

// DefaultFields returns the built-in field set for a username strategy.
func DefaultFields(attr UsernameAttribute) FieldSet {
	return internalmodel.DefaultFields(attr)
}

// UsernameLabel reports the label of the username-bearing field for a
// strategy.
func UsernameLabel(attr UsernameAttribute) string {
	return internalmodel.UsernameLabel(attr)
}

// PrimaryKey reports the input key seeding the username for a strategy.
func PrimaryKey(attr UsernameAttribute) string {
	return internalmodel.PrimaryKey(attr)
}

// Resolve computes the ordered field set for one configuration snapshot.
func Resolve(defaults FieldSet, cfg ResolveConfig) FieldSet {
	return internalmodel.Resolve(defaults, cfg)
}

// DefaultLabeler derives a display label from a field key.
func DefaultLabeler(key string) string {
	return internalmodel.DefaultLabeler(key)
}
