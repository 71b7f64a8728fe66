/*
 * Copyright (c) 2026-present TypeStore authors
 */

package schemas

import (
	"encoding/json"
	"math"
	"strings"
	"time"
)

// ValidTypeName trims name and returns it if it is a valid type name:
// non-empty and built only from [a-zA-Z0-9_-].
func ValidTypeName(name string) (string, error) {
	name = strings.TrimSpace(name)
	if len(name) == 0 {
		return "", ErrInvalidName("name is empty")
	}
	if l := len(name); l > MaxTypeNameLen {
		return "", ErrInvalidName("name «%s…» too long (%d chars, max is %d)", name[:16], l, MaxTypeNameLen)
	}
	for p, c := range name {
		ok := (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') ||
			(c >= '0' && c <= '9') || c == '_' || c == '-'
		if !ok {
			return "", ErrInvalidName("name «%s» has invalid char «%c» at pos %d", name, c, p)
		}
	}
	return name, nil
}

// ValidFieldDef checks a single field definition.
func ValidFieldDef(f FieldDef) error {
	if strings.TrimSpace(f.Name) == "" {
		return ErrInvalidField("field name is empty")
	}
	if !f.Kind.IsValid() {
		return ErrInvalidField("field «%s» has unknown kind «%s»", f.Name, f.Kind)
	}
	return nil
}

// ValidSchema checks every field definition of a schema.
// Duplicate detection is separate, see DuplicateFieldName.
func ValidSchema(schema []FieldDef) error {
	for _, f := range schema {
		if err := ValidFieldDef(f); err != nil {
			return err
		}
	}
	return nil
}

// DuplicateFieldName reports the first field name occurring more than
// once in schema.
func DuplicateFieldName(schema []FieldDef) (string, bool) {
	seen := make(map[string]struct{}, len(schema))
	for _, f := range schema {
		if _, ok := seen[f.Name]; ok {
			return f.Name, true
		}
		seen[f.Name] = struct{}{}
	}
	return "", false
}

// ValidRecordData checks data against schema, both ways: every schema
// field must be present with a value of the declared kind, and no key
// outside the schema is allowed. There is no optional-field concept.
func ValidRecordData(data map[string]any, schema []FieldDef) error {
	for _, f := range schema {
		v, ok := data[f.Name]
		if !ok {
			return ErrMissingField(f.Name)
		}
		if err := validValueKind(f, v); err != nil {
			return err
		}
	}
	for k := range data {
		known := false
		for _, f := range schema {
			if f.Name == k {
				known = true
				break
			}
		}
		if !known {
			return ErrUnknownField(k)
		}
	}
	return nil
}

// ValidTypeDoc re-validates a whole document shape. Storage runs this on
// both write and read: documents were valid when written, but external
// corruption of the persisted bytes must not leak past the read.
func ValidTypeDoc(doc *TypeDoc) error {
	if doc == nil {
		return ErrInvalidName("document is nil")
	}
	if _, err := ValidTypeName(doc.Name); err != nil {
		return err
	}
	if err := ValidSchema(doc.Schema); err != nil {
		return err
	}
	if f, dup := DuplicateFieldName(doc.Schema); dup {
		return ErrDuplicateField(f)
	}
	for i := range doc.Records {
		if doc.Records[i].ID == "" {
			return ErrInvalidField("record %d of «%s» has empty id", i, doc.Name)
		}
	}
	return nil
}

func validValueKind(f FieldDef, v any) error {
	switch f.Kind {
	case FieldKind_string:
		if _, ok := v.(string); !ok {
			return ErrTypeMismatch("field «%s» must be a string, got %T", f.Name, v)
		}
	case FieldKind_boolean:
		if _, ok := v.(bool); !ok {
			return ErrTypeMismatch("field «%s» must be a boolean, got %T", f.Name, v)
		}
	case FieldKind_number:
		n, ok := numericValue(v)
		if !ok {
			return ErrTypeMismatch("field «%s» must be a number, got %T", f.Name, v)
		}
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return ErrTypeMismatch("field «%s» must be a finite number", f.Name)
		}
	case FieldKind_date:
		s, ok := v.(string)
		if !ok {
			return ErrTypeMismatch("field «%s» must be an ISO 8601 date string, got %T", f.Name, v)
		}
		if !validDate(s) {
			return ErrTypeMismatch("field «%s»: «%s» is not a valid ISO 8601 date", f.Name, s)
		}
	default:
		return ErrInvalidField("field «%s» has unknown kind «%s»", f.Name, f.Kind)
	}
	return nil
}

// numericValue widens the numeric kinds a caller may realistically hand
// in: JSON decoding yields float64 or json.Number, Go callers may pass
// ints directly.
func numericValue(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}

func validDate(s string) bool {
	for _, layout := range dateLayouts {
		if _, err := time.Parse(layout, s); err == nil {
			return true
		}
	}
	return false
}
