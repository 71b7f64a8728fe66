/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package objstore is the object-storage backend over any S3-compatible
// endpoint. A single put is atomic in the backing store, so unlike the
// fs backend there is no temp-object/rename step; the document write
// and the index update still remain two independent calls.
package objstore

import (
	"errors"

	"github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
)

type ParamsType struct {
	// Endpoint is host:port, without scheme.
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	UseSSL          bool
	Region          string

	// Bucket is created by Init if absent.
	Bucket string

	// KeyPrefix namespaces all keys inside the bucket. Optional;
	// useful when several stores share one bucket (and in tests).
	KeyPrefix string
}

func Provide(params ParamsType, tm timeu.ITime) (istorage.ITypeStorage, error) {
	if len(params.Bucket) == 0 {
		return nil, errors.New("params.Bucket can not be empty")
	}
	client, err := minio.New(params.Endpoint, &minio.Options{
		Creds:  credentials.NewStaticV4(params.AccessKeyID, params.SecretAccessKey, ""),
		Secure: params.UseSSL,
		Region: params.Region,
	})
	if err != nil {
		return nil, err
	}
	return &typeStorage{params: params, client: client, tm: tm}, nil
}
