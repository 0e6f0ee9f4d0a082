package model

import "sort"

// ResolveConfig carries the caller-supplied portion of field resolution.
// Missing slices degrade to "no customisation"; a malformed configuration is
// therefore never an error.
type ResolveConfig struct {
	// SignUpFields are caller-supplied fields. They take precedence over
	// defaults sharing the same key and are never duplicated by them.
	SignUpFields []Field
	// HiddenDefaults removes default fields by key before merging.
	HiddenDefaults []string
	// HideAllDefaults drops every default field, leaving only SignUpFields.
	HideAllDefaults bool
}

// Resolve computes the field set for one configuration snapshot. It is a pure
// function of its inputs: the supplied slices are never mutated and repeated
// calls yield an identical order.
//
// Ordering rule for merged sets:
//  1. Fields with a display order sort before fields without one.
//  2. Among ordered fields: ascending display order, ties broken by
//     ascending key.
//  3. Among unordered fields: ascending key.
func Resolve(defaults FieldSet, cfg ResolveConfig) FieldSet {
	remaining := filterHidden(defaults, cfg.HiddenDefaults)

	if len(cfg.SignUpFields) == 0 {
		return normalize(remaining)
	}

	merged := dedupeByKey(cfg.SignUpFields)
	if !cfg.HideAllDefaults {
		present := make(map[string]struct{}, len(merged))
		for _, field := range merged {
			present[field.Key] = struct{}{}
		}
		for _, field := range remaining {
			if _, ok := present[field.Key]; ok {
				continue
			}
			merged = append(merged, field)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return fieldLess(merged[i], merged[j])
	})
	return normalize(merged)
}

func fieldLess(a, b Field) bool {
	switch {
	case a.Ordered() && b.Ordered():
		if a.DisplayOrder != b.DisplayOrder {
			return a.DisplayOrder < b.DisplayOrder
		}
		return a.Key < b.Key
	case a.Ordered():
		return true
	case b.Ordered():
		return false
	default:
		return a.Key < b.Key
	}
}

func filterHidden(defaults FieldSet, hidden []string) FieldSet {
	if len(hidden) == 0 {
		return defaults.Clone()
	}
	hiddenSet := make(map[string]struct{}, len(hidden))
	for _, key := range hidden {
		hiddenSet[key] = struct{}{}
	}
	out := make(FieldSet, 0, len(defaults))
	for _, field := range defaults {
		if _, ok := hiddenSet[field.Key]; ok {
			continue
		}
		out = append(out, field)
	}
	return out
}

// dedupeByKey keeps the first occurrence of each key so a resolved set never
// carries duplicate attribute keys.
func dedupeByKey(fields []Field) FieldSet {
	out := make(FieldSet, 0, len(fields))
	seen := make(map[string]struct{}, len(fields))
	for _, field := range fields {
		if field.Key == "" {
			continue
		}
		if _, ok := seen[field.Key]; ok {
			continue
		}
		seen[field.Key] = struct{}{}
		out = append(out, field)
	}
	return out
}

// normalize fills in display metadata callers commonly omit on custom fields.
func normalize(fields FieldSet) FieldSet {
	for i := range fields {
		if fields[i].Label == "" {
			fields[i].Label = DefaultLabeler(fields[i].Key)
		}
		if fields[i].Type == "" {
			fields[i].Type = FieldTypeText
		}
	}
	return fields
}
