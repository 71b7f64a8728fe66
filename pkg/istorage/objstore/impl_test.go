/*
 * Copyright (c) 2026-present TypeStore authors
 */

package objstore

import (
	"context"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

// Runs against any S3-compatible endpoint, e.g. a local MinIO:
//
//	docker run -p 9000:9000 minio/minio server /data
//	TYPESTORE_OBJSTORE_ENDPOINT=127.0.0.1:9000 \
//	TYPESTORE_OBJSTORE_ACCESS_KEY=minioadmin \
//	TYPESTORE_OBJSTORE_SECRET_KEY=minioadmin go test ./...
func testParams(t *testing.T) ParamsType {
	endpoint := os.Getenv("TYPESTORE_OBJSTORE_ENDPOINT")
	if endpoint == "" {
		t.Skip("TYPESTORE_OBJSTORE_ENDPOINT is not set")
	}
	return ParamsType{
		Endpoint:        endpoint,
		AccessKeyID:     os.Getenv("TYPESTORE_OBJSTORE_ACCESS_KEY"),
		SecretAccessKey: os.Getenv("TYPESTORE_OBJSTORE_SECRET_KEY"),
		Bucket:          "typestore-test",
		KeyPrefix:       strings.ReplaceAll(uuid.NewString(), "-", "") + "/",
	}
}

func newTestStorage(t *testing.T) istorage.ITypeStorage {
	params := testParams(t)
	tm := timeu.NewMockTime(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Second)
	storage, err := Provide(params, tm)
	require.NoError(t, err)
	return storage
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
}

func TestTCK(t *testing.T) {
	istorage.TechnologyCompatibilityKit(t, newTestStorage)
}

func TestProvideRequiresBucket(t *testing.T) {
	_, err := Provide(ParamsType{Endpoint: "127.0.0.1:9000"}, timeu.NewITime())
	require.Error(t, err)
}
