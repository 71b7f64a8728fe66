/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package schemas holds the data model of the record store — field
// definitions, type documents, records and the index — plus the pure
// validation functions that enforce structural typing at runtime.
// No I/O happens here; the clock is always passed in.
package schemas

import (
	"slices"
	"time"
)

// FieldKind is the declared kind of a schema field.
type FieldKind string

func (k FieldKind) IsValid() bool {
	switch k {
	case FieldKind_string, FieldKind_number, FieldKind_boolean, FieldKind_date:
		return true
	}
	return false
}

// FieldDef is one schema entry. Immutable once part of a persisted
// schema: fields are only ever appended, never removed or retyped.
type FieldDef struct {
	Name string    `json:"name"`
	Kind FieldKind `json:"type"`
}

// Record is one schema-conformant data entry. Records are immutable
// after creation; there is no update or delete for single records.
type Record struct {
	ID        string         `json:"id"`
	Data      map[string]any `json:"data"`
	CreatedAt time.Time      `json:"createdAt"`
}

// TypeDoc is the whole persisted document for one type: schema plus all
// its records. Owned by the storage layer; operations hold a transient
// copy for the duration of a single call.
type TypeDoc struct {
	Name      string     `json:"name"`
	Schema    []FieldDef `json:"schema"`
	Records   []Record   `json:"records"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Field returns the schema entry with the given name.
func (d *TypeDoc) Field(name string) (FieldDef, bool) {
	for _, f := range d.Schema {
		if f.Name == name {
			return f, true
		}
	}
	return FieldDef{}, false
}

// NewTypeDoc builds a fresh document with an empty record list and
// createdAt == updatedAt == now. The schema is not validated here.
func NewTypeDoc(name string, schema []FieldDef, now time.Time) *TypeDoc {
	if schema == nil {
		schema = []FieldDef{}
	}
	return &TypeDoc{
		Name:      name,
		Schema:    slices.Clone(schema),
		Records:   []Record{},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Index is the denormalized list of existing type names, kept sorted.
// Its types set must equal the set of persisted documents; the window
// between a document write and the index update is the only accepted
// divergence.
type Index struct {
	Types       []string  `json:"types"`
	LastUpdated time.Time `json:"lastUpdated"`
}

func NewIndex(now time.Time) *Index {
	return &Index{Types: []string{}, LastUpdated: now}
}

func (idx *Index) Contains(name string) bool {
	_, found := slices.BinarySearch(idx.Types, name)
	return found
}

// Add inserts name keeping Types sorted and duplicate-free.
func (idx *Index) Add(name string, now time.Time) {
	i, found := slices.BinarySearch(idx.Types, name)
	if !found {
		idx.Types = slices.Insert(idx.Types, i, name)
	}
	idx.LastUpdated = now
}

func (idx *Index) Remove(name string, now time.Time) {
	i, found := slices.BinarySearch(idx.Types, name)
	if found {
		idx.Types = slices.Delete(idx.Types, i, i+1)
	}
	idx.LastUpdated = now
}
