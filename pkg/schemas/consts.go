/*
 * Copyright (c) 2026-present TypeStore authors
 */

package schemas

// Field kinds a schema may declare. These literal strings are the wire
// values, both in persisted documents and in caller-facing payloads.
const (
	FieldKind_string  FieldKind = "string"
	FieldKind_number  FieldKind = "number"
	FieldKind_boolean FieldKind = "boolean"
	FieldKind_date    FieldKind = "date"
)

// MaxTypeNameLen bounds type names. The allowed character class is
// [a-zA-Z0-9_-], see ValidTypeName.
const MaxTypeNameLen = 255

// Date field values are ISO 8601 strings. Both full timestamps and the
// date-only form are accepted.
var dateLayouts = []string{
	"2006-01-02T15:04:05Z07:00", // time.RFC3339
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02",
}
