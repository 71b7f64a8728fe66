/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package records implements the operations the core exposes to its
// collaborators (whatever transport fronts them): enumerate and fetch
// types, create a type, append a field, append a record, delete a type.
// Every operation follows the same shape: validate inputs, confirm
// existence as required, read the current document, apply the validated
// change, persist the whole document.
//
// The design assumes a single logical writer per type. Two callers
// mutating the same type concurrently both read the same document and
// the second whole-document write silently discards the first append:
// last-write-wins, no merge. Per-type serialization or a version/etag
// compare-and-swap on WriteType is the upgrade path if concurrent
// writers must be supported.
package records

import (
	"context"

	"github.com/typestore/typestore/pkg/schemas"
)

type IRecords interface {
	// ListTypes enumerates the index and re-reads every document for a
	// live record count. A document deleted between the index read and
	// the per-type read fails the whole call with ErrTypeNotFoundError
	// naming the stale entry; the report is never silently shortened.
	ListTypes(ctx context.Context) (ListTypesResult, error)

	// GetType returns the full document including all records.
	GetType(ctx context.Context, typeName string) (TypeInfo, error)

	// CreateType persists a new document with the given schema, empty
	// records and createdAt == updatedAt == now. The schema is fixed at
	// birth; only AddField extends it afterwards.
	CreateType(ctx context.Context, name string, fields []schemas.FieldDef) (CreateTypeResult, error)

	// AddField appends one field to an existing type's schema. Existing
	// records are not touched; records written from now on must carry
	// the new field.
	AddField(ctx context.Context, typeName, fieldName string, fieldKind schemas.FieldKind) (AddFieldResult, error)

	// AddRecord validates data against the type's current schema and
	// appends a record with a fresh id. A failed validation leaves the
	// persisted document untouched.
	AddRecord(ctx context.Context, typeName string, data map[string]any) (AddRecordResult, error)

	// DeleteType removes the document and its index entry.
	DeleteType(ctx context.Context, typeName string) (DeleteTypeResult, error)
}
