/*
 * Copyright (c) 2026-present TypeStore authors
 */

package fs

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

func newTestStorage(t *testing.T) istorage.ITypeStorage {
	tm := timeu.NewMockTime(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Second)
	return Provide(ParamsType{RootDir: t.TempDir()}, tm)
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	storage := newTestStorage(t)
	require.NoError(storage.Init(ctx))

	doc := schemas.NewTypeDoc("coffee", []schemas.FieldDef{
		{Name: "flavor", Kind: schemas.FieldKind_string},
	}, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	got, err := storage.ReadType(ctx, "coffee")
	require.NoError(err)
	require.Equal("coffee", got.Name)

	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Equal([]string{"coffee"}, types)
}

func TestTCK(t *testing.T) {
	istorage.TechnologyCompatibilityKit(t, newTestStorage)
}

func TestCorruptedDocument(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	root := t.TempDir()
	tm := timeu.NewMockTime(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Second)
	storage := Provide(ParamsType{RootDir: root}, tm)
	require.NoError(storage.Init(ctx))

	doc := schemas.NewTypeDoc("coffee", []schemas.FieldDef{
		{Name: "flavor", Kind: schemas.FieldKind_string},
	}, tm.Now())
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	// corrupt the persisted bytes behind the storage's back
	path := filepath.Join(root, "types", "coffee.json")
	require.NoError(os.WriteFile(path, []byte(`{"name":"coffee","schema":[{"name":"flavor","type":"blob"}]}`), 0666))

	_, err := storage.ReadType(ctx, "coffee")
	require.ErrorIs(err, schemas.ErrInvalidFieldError)

	require.NoError(os.WriteFile(path, []byte(`not json at all`), 0666))
	_, err = storage.ReadType(ctx, "coffee")
	require.Error(err)
}

func TestNoPartialDocumentFiles(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	root := t.TempDir()
	tm := timeu.NewMockTime(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Second)
	storage := Provide(ParamsType{RootDir: root}, tm)
	require.NoError(storage.Init(ctx))

	doc := schemas.NewTypeDoc("coffee", []schemas.FieldDef{
		{Name: "flavor", Kind: schemas.FieldKind_string},
	}, tm.Now())
	require.NoError(storage.WriteType(ctx, "coffee", doc))

	// temp files are renamed away, not left behind
	for _, dir := range []string{root, filepath.Join(root, "types")} {
		entries, err := os.ReadDir(dir)
		require.NoError(err)
		for _, e := range entries {
			require.NotContains(e.Name(), ".tmp-")
		}
	}
}
