package model

// Built-in default field sets, one per username strategy. The primary
// identifier always renders first, password second.

func signUpWithUsernameFields() FieldSet {
	return FieldSet{
		{Key: KeyUsername, Label: "Username", Placeholder: "Username", Required: true, DisplayOrder: 1, Type: FieldTypeText},
		{Key: KeyPassword, Label: "Password", Placeholder: "Password", Required: true, DisplayOrder: 2, Type: FieldTypePassword},
		{Key: KeyEmail, Label: "Email", Placeholder: "Email", Required: true, DisplayOrder: 3, Type: FieldTypeEmail},
		{Key: KeyPhoneNumber, Label: "Phone Number", Placeholder: "Phone Number", Required: true, DisplayOrder: 4, Type: FieldTypeTel},
	}
}

func signUpWithEmailFields() FieldSet {
	return FieldSet{
		{Key: KeyEmail, Label: "Email", Placeholder: "Email", Required: true, DisplayOrder: 1, Type: FieldTypeEmail},
		{Key: KeyPassword, Label: "Password", Placeholder: "Password", Required: true, DisplayOrder: 2, Type: FieldTypePassword},
		{Key: KeyPhoneNumber, Label: "Phone Number", Placeholder: "Phone Number", Required: true, DisplayOrder: 3, Type: FieldTypeTel},
	}
}

func signUpWithPhoneNumberFields() FieldSet {
	return FieldSet{
		{Key: KeyPhoneNumber, Label: "Phone Number", Placeholder: "Phone Number", Required: true, DisplayOrder: 1, Type: FieldTypeTel},
		{Key: KeyPassword, Label: "Password", Placeholder: "Password", Required: true, DisplayOrder: 2, Type: FieldTypePassword},
		{Key: KeyEmail, Label: "Email", Placeholder: "Email", Required: true, DisplayOrder: 3, Type: FieldTypeEmail},
	}
}

// DefaultFields returns a fresh copy of the built-in field set for the given
// username strategy. Callers receive independent storage on every call so
// resolution never mutates shared defaults.
func DefaultFields(attr UsernameAttribute) FieldSet {
	switch attr {
	case UsernameAttributeEmail:
		return signUpWithEmailFields()
	case UsernameAttributePhoneNumber:
		return signUpWithPhoneNumberFields()
	default:
		return signUpWithUsernameFields()
	}
}

// UsernameLabel reports the display label of the username-bearing field for
// the given strategy.
func UsernameLabel(attr UsernameAttribute) string {
	switch attr {
	case UsernameAttributeEmail:
		return "Email"
	case UsernameAttributePhoneNumber:
		return "Phone Number"
	default:
		return "Username"
	}
}

// PrimaryKey reports the input key whose value seeds the username before
// label-based resolution runs.
func PrimaryKey(attr UsernameAttribute) string {
	switch attr {
	case UsernameAttributePhoneNumber:
		return KeyPhoneNumber
	case UsernameAttributeUsername:
		return KeyUsername
	default:
		return KeyEmail
	}
}
