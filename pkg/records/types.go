/*
 * Copyright (c) 2026-present TypeStore authors
 */

package records

import (
	"time"

	"github.com/typestore/typestore/pkg/schemas"
)

// TypeSummary is one ListTypes entry: the schema plus a live record
// count, without the records themselves.
type TypeSummary struct {
	Name        string             `json:"name"`
	Schema      []schemas.FieldDef `json:"schema"`
	RecordCount int                `json:"recordCount"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type ListTypesResult struct {
	Types []TypeSummary `json:"types"`
}

// TypeInfo is the full GetType payload including all records.
type TypeInfo struct {
	Name        string             `json:"name"`
	Schema      []schemas.FieldDef `json:"schema"`
	Records     []schemas.Record   `json:"records"`
	RecordCount int                `json:"recordCount"`
	CreatedAt   time.Time          `json:"createdAt"`
	UpdatedAt   time.Time          `json:"updatedAt"`
}

type CreateTypeResult struct {
	Success  bool   `json:"success"`
	TypeName string `json:"typeName"`
	Message  string `json:"message"`
}

type AddFieldResult struct {
	Success   bool   `json:"success"`
	TypeName  string `json:"typeName"`
	FieldName string `json:"fieldName"`
	Message   string `json:"message"`
}

type AddRecordResult struct {
	Success  bool   `json:"success"`
	TypeName string `json:"typeName"`
	RecordID string `json:"recordId"`
	Message  string `json:"message"`
}

type DeleteTypeResult struct {
	Success  bool   `json:"success"`
	TypeName string `json:"typeName"`
	Message  string `json:"message"`
}
