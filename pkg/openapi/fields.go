// Package openapi derives custom sign-up fields from an OpenAPI component
// schema, so services that already describe their user model can feed it to
// the field resolver instead of repeating it in configuration.
package openapi

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"

	"github.com/goliatone/go-signup/pkg/model"
)

// Extension keys honoured on schema properties.
const (
	orderExtensionKey       = "x-signup-order"
	placeholderExtensionKey = "x-signup-placeholder"
)

// standardAttributes lists the identity attributes providers store without a
// custom namespace. Anything else derived from a schema is marked custom.
var standardAttributes = map[string]struct{}{
	"address": {}, "birthdate": {}, "email": {}, "family_name": {},
	"gender": {}, "given_name": {}, "locale": {}, "middle_name": {},
	"name": {}, "nickname": {}, "password": {}, "phone_number": {},
	"picture": {}, "preferred_username": {}, "profile": {},
	"updated_at": {}, "username": {}, "website": {}, "zoneinfo": {},
}

// LoadFile loads an OpenAPI document from disk.
func LoadFile(ctx context.Context, path string) (*openapi3.T, error) {
	if path == "" {
		return nil, errors.New("openapi: document path is required")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("openapi: load %s: %w", path, err)
	}
	return doc, nil
}

// LoadData loads an OpenAPI document from a raw payload.
func LoadData(ctx context.Context, raw []byte) (*openapi3.T, error) {
	if len(raw) == 0 {
		return nil, errors.New("openapi: document payload is empty")
	}
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(raw)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}

// Fields converts the named component schema into sign-up fields. Only
// string-typed properties participate; everything the provider does not store
// as a built-in identity attribute is marked custom. Properties opt into
// explicit positioning through the x-signup-order extension.
func Fields(doc *openapi3.T, schemaName string) ([]model.Field, error) {
	if doc == nil {
		return nil, errors.New("openapi: document is required")
	}
	if doc.Components == nil || len(doc.Components.Schemas) == 0 {
		return nil, errors.New("openapi: document has no component schemas")
	}
	ref, ok := doc.Components.Schemas[schemaName]
	if !ok || ref == nil || ref.Value == nil {
		return nil, fmt.Errorf("openapi: schema %q not found", schemaName)
	}
	schema := ref.Value

	requiredSet := make(map[string]struct{}, len(schema.Required))
	for _, name := range schema.Required {
		requiredSet[name] = struct{}{}
	}

	propNames := make([]string, 0, len(schema.Properties))
	for name := range schema.Properties {
		propNames = append(propNames, name)
	}
	sort.Strings(propNames)

	var fields []model.Field
	for _, name := range propNames {
		propRef := schema.Properties[name]
		if propRef == nil || propRef.Value == nil {
			continue
		}
		prop := propRef.Value
		if !isStringType(prop.Type) {
			continue
		}

		_, required := requiredSet[name]
		_, standard := standardAttributes[name]
		field := model.Field{
			Key:          name,
			Label:        prop.Title,
			Required:     required,
			Custom:       !standard,
			Type:         fieldType(prop.Format),
			DisplayOrder: extensionOrder(prop.Extensions),
			Placeholder:  extensionString(prop.Extensions, placeholderExtensionKey),
		}
		fields = append(fields, field)
	}

	if len(fields) == 0 {
		return nil, fmt.Errorf("openapi: schema %q has no string properties", schemaName)
	}
	return fields, nil
}

func isStringType(types *openapi3.Types) bool {
	if types == nil {
		return false
	}
	for _, value := range types.Slice() {
		if value == "string" {
			return true
		}
	}
	return false
}

func fieldType(format string) model.FieldType {
	switch strings.TrimSpace(strings.ToLower(format)) {
	case "email":
		return model.FieldTypeEmail
	case "password":
		return model.FieldTypePassword
	case "tel", "phone":
		return model.FieldTypeTel
	default:
		return model.FieldTypeText
	}
}

func extensionOrder(ext map[string]any) int {
	raw, ok := ext[orderExtensionKey]
	if !ok {
		return 0
	}
	switch value := raw.(type) {
	case int:
		return clampOrder(value)
	case int64:
		return clampOrder(int(value))
	case float64:
		return clampOrder(int(value))
	case string:
		parsed, err := strconv.Atoi(strings.TrimSpace(value))
		if err != nil {
			return 0
		}
		return clampOrder(parsed)
	default:
		return 0
	}
}

func clampOrder(order int) int {
	if order < 0 {
		return 0
	}
	return order
}

func extensionString(ext map[string]any, key string) string {
	raw, ok := ext[key]
	if !ok {
		return ""
	}
	value, ok := raw.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(value)
}
