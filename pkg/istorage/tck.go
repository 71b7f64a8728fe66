/*
 * Copyright (c) 2026-present TypeStore authors
 */

package istorage

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/typestore/typestore/pkg/schemas"
)

// TechnologyCompatibilityKit is the conformance suite every backend's
// tests run. newStorage must return a fresh, empty, not yet initialized
// storage per call.
func TechnologyCompatibilityKit(t *testing.T, newStorage func(t *testing.T) ITypeStorage) {
	t.Run("Init_Idempotent", func(t *testing.T) { testInitIdempotent(t, newStorage(t)) })
	t.Run("ReadType_NotFound", func(t *testing.T) { testReadNotFound(t, newStorage(t)) })
	t.Run("WriteType_ReadType_Roundtrip", func(t *testing.T) { testWriteReadRoundtrip(t, newStorage(t)) })
	t.Run("WriteType_RejectsInvalidDoc", func(t *testing.T) { testWriteRejectsInvalid(t, newStorage(t)) })
	t.Run("WriteType_WholeDocumentOverwrite", func(t *testing.T) { testWholeDocumentOverwrite(t, newStorage(t)) })
	t.Run("ListTypes_SortedIndex", func(t *testing.T) { testListTypesSorted(t, newStorage(t)) })
	t.Run("DeleteType", func(t *testing.T) { testDeleteType(t, newStorage(t)) })
	t.Run("TypeExists", func(t *testing.T) { testTypeExists(t, newStorage(t)) })
}

func tckTime() time.Time {
	return time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC)
}

func tckDoc(name string, now time.Time) *schemas.TypeDoc {
	return schemas.NewTypeDoc(name, []schemas.FieldDef{
		{Name: "flavor", Kind: schemas.FieldKind_string},
		{Name: "rating", Kind: schemas.FieldKind_number},
	}, now)
}

func testInitIdempotent(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()

	require.NoError(storage.Init(ctx))
	require.NoError(storage.Init(ctx))

	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Empty(types)
}

func testReadNotFound(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	doc, err := storage.ReadType(ctx, "nosuchtype")
	require.ErrorIs(err, ErrTypeNotFoundError)
	require.Nil(doc)
}

func testWriteReadRoundtrip(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	now := tckTime()
	doc := tckDoc("coffee", now)
	doc.Records = append(doc.Records, schemas.Record{
		ID:        schemas.NewRecordID(now),
		Data:      map[string]any{"flavor": "nutty", "rating": 8.5},
		CreatedAt: now,
	})
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	got, err := storage.ReadType(ctx, "coffee")
	require.NoError(err)
	require.Equal("coffee", got.Name)
	require.Equal(doc.Schema, got.Schema) // order preserved
	require.Len(got.Records, 1)
	require.Equal(doc.Records[0].ID, got.Records[0].ID)
	require.Equal("nutty", got.Records[0].Data["flavor"])
	require.Equal(8.5, got.Records[0].Data["rating"])
	require.True(got.CreatedAt.Equal(now))
	require.True(got.UpdatedAt.Equal(now))
}

func testWriteRejectsInvalid(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	bad := schemas.NewTypeDoc("coffee", []schemas.FieldDef{{Name: "x", Kind: "blob"}}, tckTime())
	require.ErrorIs(storage.WriteType(ctx, "coffee", bad), schemas.ErrInvalidFieldError)

	// nothing was persisted, neither document nor index entry
	exists, err := storage.TypeExists(ctx, "coffee")
	require.NoError(err)
	require.False(exists)
	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Empty(types)
}

func testWholeDocumentOverwrite(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	now := tckTime()
	doc := tckDoc("coffee", now)
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	doc.Schema = append(doc.Schema, schemas.FieldDef{Name: "origin", Kind: schemas.FieldKind_string})
	doc.UpdatedAt = now.Add(time.Minute)
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	got, err := storage.ReadType(ctx, "coffee")
	require.NoError(err)
	require.Len(got.Schema, 3)
	require.True(got.UpdatedAt.Equal(now.Add(time.Minute)))

	// index holds the name once
	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Equal([]string{"coffee"}, types)
}

func testListTypesSorted(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	now := tckTime()
	for _, name := range []string{"whisky", "beer", "coffee"} {
		require.NoError(storage.WriteType(ctx, name, tckDoc(name, now)))
	}

	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Equal([]string{"beer", "coffee", "whisky"}, types)
}

func testDeleteType(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	now := tckTime()
	require.NoError(storage.WriteType(ctx, "coffee", tckDoc("coffee", now)))
	require.NoError(storage.WriteType(ctx, "whisky", tckDoc("whisky", now)))

	require.NoError(storage.DeleteType(ctx, "coffee"))

	_, err := storage.ReadType(ctx, "coffee")
	require.ErrorIs(err, ErrTypeNotFoundError)
	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Equal([]string{"whisky"}, types)

	require.ErrorIs(storage.DeleteType(ctx, "coffee"), ErrTypeNotFoundError)
	require.ErrorIs(storage.DeleteType(ctx, "nosuchtype"), ErrTypeNotFoundError)
}

func testTypeExists(t *testing.T, storage ITypeStorage) {
	require := require.New(t)
	ctx := context.Background()
	require.NoError(storage.Init(ctx))

	exists, err := storage.TypeExists(ctx, "coffee")
	require.NoError(err)
	require.False(exists)

	require.NoError(storage.WriteType(ctx, "coffee", tckDoc("coffee", tckTime())))

	exists, err = storage.TypeExists(ctx, "coffee")
	require.NoError(err)
	require.True(exists)

	require.NoError(storage.DeleteType(ctx, "coffee"))
	exists, err = storage.TypeExists(ctx, "coffee")
	require.NoError(err)
	require.False(exists)
}
