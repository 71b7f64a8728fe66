/*
 * Copyright (c) 2026-present TypeStore authors
 */

package bbolt

import (
	"context"
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
	storage := Provide(ParamsType{DBPath: filepath.Join(t.TempDir(), "typestore.db")}, tm)
	t.Cleanup(func() { storage.(*typeStorage).Close() })
	return storage
}

func TestBasicUsage(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	storage := newTestStorage(t)
	require.NoError(storage.Init(ctx))

	doc := schemas.NewTypeDoc("whisky", []schemas.FieldDef{
		{Name: "peated", Kind: schemas.FieldKind_boolean},
	}, time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC))
	require.NoError(storage.WriteType(ctx, "whisky", doc))

	got, err := storage.ReadType(ctx, "whisky")
	require.NoError(err)
	require.Equal("whisky", got.Name)

	types, err := storage.ListTypes(ctx)
	require.NoError(err)
	require.Equal([]string{"whisky"}, types)
}

func TestTCK(t *testing.T) {
	istorage.TechnologyCompatibilityKit(t, newTestStorage)
}
