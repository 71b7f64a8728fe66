/*
 * Copyright (c) 2026-present TypeStore authors
 */

package objstore

import (
	"bytes"
	"context"
	"io"

	"github.com/minio/minio-go/v7"

	"github.com/typestore/typestore/pkg/goutils/logger"
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

const noSuchKey = "NoSuchKey"

type typeStorage struct {
	params ParamsType
	client *minio.Client
	tm     timeu.ITime
}

func (s *typeStorage) Init(ctx context.Context) error {
	exists, err := s.client.BucketExists(ctx, s.params.Bucket)
	if err != nil {
		return istorage.ErrStorageUnavailable("init", err)
	}
	if !exists {
		err = s.client.MakeBucket(ctx, s.params.Bucket, minio.MakeBucketOptions{Region: s.params.Region})
		if err != nil {
			// a concurrent Init may have created it in between
			resp := minio.ToErrorResponse(err)
			if resp.Code != "BucketAlreadyOwnedByYou" && resp.Code != "BucketAlreadyExists" {
				return istorage.ErrStorageUnavailable("init", err)
			}
		}
	}
	if _, err = s.client.StatObject(ctx, s.params.Bucket, s.key(istorage.IndexKey), minio.StatObjectOptions{}); err == nil {
		return nil
	} else if minio.ToErrorResponse(err).Code != noSuchKey {
		return istorage.ErrStorageUnavailable("init", err)
	}
	data, err := istorage.MarshalIndex(schemas.NewIndex(s.tm.Now()))
	if err != nil {
		// notest
		return err
	}
	if err := s.put(ctx, istorage.IndexKey, data); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("object storage initialized, bucket", s.params.Bucket)
	}
	return nil
}

func (s *typeStorage) ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error) {
	data, err := s.get(ctx, istorage.TypeKey(name))
	if err != nil {
		if minio.ToErrorResponse(err).Code == noSuchKey {
			return nil, istorage.ErrTypeNotFound(name)
		}
		return nil, istorage.ErrStorageUnavailable("read type", err)
	}
	return istorage.UnmarshalTypeDoc(data)
}

func (s *typeStorage) WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error {
	data, err := istorage.MarshalTypeDoc(doc)
	if err != nil {
		return err
	}
	if err := s.put(ctx, istorage.TypeKey(name), data); err != nil {
		return err
	}
	return s.updateIndex(ctx, func(idx *schemas.Index) {
		idx.Add(name, s.tm.Now())
	})
}

func (s *typeStorage) ListTypes(ctx context.Context) ([]string, error) {
	idx, err := s.readIndex(ctx)
	if err != nil {
		return nil, err
	}
	return idx.Types, nil
}

func (s *typeStorage) DeleteType(ctx context.Context, name string) error {
	key := s.key(istorage.TypeKey(name))
	if _, err := s.client.StatObject(ctx, s.params.Bucket, key, minio.StatObjectOptions{}); err != nil {
		if minio.ToErrorResponse(err).Code == noSuchKey {
			return istorage.ErrTypeNotFound(name)
		}
		return istorage.ErrStorageUnavailable("delete type", err)
	}
	if err := s.client.RemoveObject(ctx, s.params.Bucket, key, minio.RemoveObjectOptions{}); err != nil {
		return istorage.ErrStorageUnavailable("delete type", err)
	}
	return s.updateIndex(ctx, func(idx *schemas.Index) {
		idx.Remove(name, s.tm.Now())
	})
}

func (s *typeStorage) TypeExists(ctx context.Context, name string) (bool, error) {
	_, err := s.client.StatObject(ctx, s.params.Bucket, s.key(istorage.TypeKey(name)), minio.StatObjectOptions{})
	if err == nil {
		return true, nil
	}
	if minio.ToErrorResponse(err).Code == noSuchKey {
		return false, nil
	}
	return false, istorage.ErrStorageUnavailable("type exists", err)
}

func (s *typeStorage) key(k string) string {
	return s.params.KeyPrefix + k
}

func (s *typeStorage) get(ctx context.Context, key string) ([]byte, error) {
	obj, err := s.client.GetObject(ctx, s.params.Bucket, s.key(key), minio.GetObjectOptions{})
	if err != nil {
		return nil, err
	}
	defer obj.Close()
	// GetObject is lazy, missing keys surface at first read
	return io.ReadAll(obj)
}

func (s *typeStorage) put(ctx context.Context, key string, data []byte) error {
	_, err := s.client.PutObject(ctx, s.params.Bucket, s.key(key), bytes.NewReader(data), int64(len(data)),
		minio.PutObjectOptions{ContentType: "application/json"})
	if err != nil {
		return istorage.ErrStorageUnavailable("write", err)
	}
	return nil
}

func (s *typeStorage) readIndex(ctx context.Context) (*schemas.Index, error) {
	data, err := s.get(ctx, istorage.IndexKey)
	if err != nil {
		return nil, istorage.ErrStorageUnavailable("read index", err)
	}
	return istorage.UnmarshalIndex(data)
}

func (s *typeStorage) updateIndex(ctx context.Context, mutate func(idx *schemas.Index)) error {
	idx, err := s.readIndex(ctx)
	if err != nil {
		return err
	}
	mutate(idx)
	data, err := istorage.MarshalIndex(idx)
	if err != nil {
		// notest
		return err
	}
	return s.put(ctx, istorage.IndexKey, data)
}
