/*
 * Copyright (c) 2026-present TypeStore authors
 */

package records

import (
	"context"
	"fmt"

	"github.com/typestore/typestore/pkg/goutils/logger"
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

type implRecords struct {
	storage istorage.ITypeStorage
	tm      timeu.ITime
}

func (r *implRecords) ListTypes(ctx context.Context) (res ListTypesResult, err error) {
	names, err := r.storage.ListTypes(ctx)
	if err != nil {
		return res, err
	}
	res.Types = make([]TypeSummary, 0, len(names))
	for _, name := range names {
		doc, err := r.storage.ReadType(ctx, name)
		if err != nil {
			// a stale index entry fails the whole report rather than
			// silently shrinking it
			return ListTypesResult{}, err
		}
		res.Types = append(res.Types, TypeSummary{
			Name:        doc.Name,
			Schema:      doc.Schema,
			RecordCount: len(doc.Records),
			CreatedAt:   doc.CreatedAt,
			UpdatedAt:   doc.UpdatedAt,
		})
	}
	return res, nil
}

func (r *implRecords) GetType(ctx context.Context, typeName string) (res TypeInfo, err error) {
	typeName, err = schemas.ValidTypeName(typeName)
	if err != nil {
		return res, err
	}
	doc, err := r.storage.ReadType(ctx, typeName)
	if err != nil {
		return res, err
	}
	return TypeInfo{
		Name:        doc.Name,
		Schema:      doc.Schema,
		Records:     doc.Records,
		RecordCount: len(doc.Records),
		CreatedAt:   doc.CreatedAt,
		UpdatedAt:   doc.UpdatedAt,
	}, nil
}

func (r *implRecords) CreateType(ctx context.Context, name string, fields []schemas.FieldDef) (res CreateTypeResult, err error) {
	name, err = schemas.ValidTypeName(name)
	if err != nil {
		return res, err
	}
	if err = schemas.ValidSchema(fields); err != nil {
		return res, err
	}
	if f, dup := schemas.DuplicateFieldName(fields); dup {
		return res, schemas.ErrDuplicateField(f)
	}
	exists, err := r.storage.TypeExists(ctx, name)
	if err != nil {
		return res, err
	}
	if exists {
		return res, ErrTypeAlreadyExists(name)
	}
	doc := schemas.NewTypeDoc(name, fields, r.tm.Now())
	if err = r.storage.WriteType(ctx, name, doc); err != nil {
		return res, err
	}
	if logger.IsVerbose() {
		logger.Verbose("type created:", name)
	}
	return CreateTypeResult{
		Success:  true,
		TypeName: name,
		Message:  fmt.Sprintf("Type '%s' created with %d field(s)", name, len(fields)),
	}, nil
}

func (r *implRecords) AddField(ctx context.Context, typeName, fieldName string, fieldKind schemas.FieldKind) (res AddFieldResult, err error) {
	typeName, err = schemas.ValidTypeName(typeName)
	if err != nil {
		return res, err
	}
	field := schemas.FieldDef{Name: fieldName, Kind: fieldKind}
	if err = schemas.ValidFieldDef(field); err != nil {
		return res, err
	}
	doc, err := r.storage.ReadType(ctx, typeName)
	if err != nil {
		return res, err
	}
	if _, ok := doc.Field(fieldName); ok {
		return res, schemas.ErrDuplicateField(fieldName)
	}
	doc.Schema = append(doc.Schema, field)
	doc.UpdatedAt = r.tm.Now()
	if err = r.storage.WriteType(ctx, typeName, doc); err != nil {
		return res, err
	}
	return AddFieldResult{
		Success:   true,
		TypeName:  typeName,
		FieldName: fieldName,
		Message:   fmt.Sprintf("Field '%s' (%s) added to type '%s'", fieldName, fieldKind, typeName),
	}, nil
}

func (r *implRecords) AddRecord(ctx context.Context, typeName string, data map[string]any) (res AddRecordResult, err error) {
	typeName, err = schemas.ValidTypeName(typeName)
	if err != nil {
		return res, err
	}
	doc, err := r.storage.ReadType(ctx, typeName)
	if err != nil {
		return res, err
	}
	if err = schemas.ValidRecordData(data, doc.Schema); err != nil {
		return res, err
	}
	now := r.tm.Now()
	rec := schemas.Record{
		ID:        schemas.NewRecordID(now),
		Data:      data,
		CreatedAt: now,
	}
	doc.Records = append(doc.Records, rec)
	doc.UpdatedAt = now
	if err = r.storage.WriteType(ctx, typeName, doc); err != nil {
		return res, err
	}
	return AddRecordResult{
		Success:  true,
		TypeName: typeName,
		RecordID: rec.ID,
		Message:  fmt.Sprintf("Record added to type '%s'", typeName),
	}, nil
}

func (r *implRecords) DeleteType(ctx context.Context, typeName string) (res DeleteTypeResult, err error) {
	typeName, err = schemas.ValidTypeName(typeName)
	if err != nil {
		return res, err
	}
	if err = r.storage.DeleteType(ctx, typeName); err != nil {
		return res, err
	}
	if logger.IsVerbose() {
		logger.Verbose("type deleted:", typeName)
	}
	return DeleteTypeResult{
		Success:  true,
		TypeName: typeName,
		Message:  fmt.Sprintf("Type '%s' deleted", typeName),
	}, nil
}
