/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package istorage defines the storage contract every backend
// implements, the shared document codec, and the Technology
// Compatibility Kit the backend tests run.
package istorage

import (
	"context"

	"github.com/typestore/typestore/pkg/schemas"
)

// ITypeStorage persists one document per type plus one shared index
// document. Implemented by the fs, objstore, bbolt and mem backends and
// by the istoragecache decorator.
//
// The document write and the index update inside WriteType/DeleteType
// are two separate persistence operations, not an atomic pair. A crash
// between them leaves a document the index does not list (or lists but
// no longer exists); TypeExists therefore checks the document directly,
// never the index.
type ITypeStorage interface {
	// Init is idempotent setup: create the root location and an empty
	// index if none exists. Safe to call multiple times.
	Init(ctx context.Context) error

	// ReadType returns the parsed document, re-validated against the
	// document shape to guard against external corruption.
	// Returns ErrTypeNotFoundError if no document exists for name.
	ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error)

	// WriteType validates doc, persists it as a whole-document
	// overwrite, then adds name to the index.
	WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error

	// ListTypes returns the index's current types list, alphabetically
	// ordered. This reads the cached index, not the documents.
	ListTypes(ctx context.Context) ([]string, error)

	// DeleteType removes the persisted document, then removes name from
	// the index. Returns ErrTypeNotFoundError if absent.
	DeleteType(ctx context.Context, name string) error

	// TypeExists checks the persisted document directly (not the
	// index), keeping existence checks authoritative even when the
	// index is stale.
	TypeExists(ctx context.Context, name string) (bool, error)
}
