/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package istoragecache decorates any ITypeStorage with a read-through
// document cache. Only positive ReadType results are cached; TypeExists
// and ListTypes always hit the underlying storage, keeping existence
// checks and index reads authoritative.
package istoragecache

import (
	"context"

	"github.com/VictoriaMetrics/fastcache"

	"github.com/typestore/typestore/pkg/imetrics"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

// Provide wraps storage with a cache of maxBytes. storageKind labels the
// metrics, e.g. "fs" or "objstore".
func Provide(maxBytes int, storage istorage.ITypeStorage, metrics imetrics.IMetrics, storageKind string) istorage.ITypeStorage {
	return &cachedTypeStorage{
		cache:       fastcache.New(maxBytes),
		storage:     storage,
		metrics:     metrics,
		storageKind: storageKind,
	}
}

type cachedTypeStorage struct {
	cache       *fastcache.Cache
	storage     istorage.ITypeStorage
	metrics     imetrics.IMetrics
	storageKind string
}

func (s *cachedTypeStorage) Init(ctx context.Context) error {
	return s.storage.Init(ctx)
}

func (s *cachedTypeStorage) ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error) {
	s.metrics.Increase(readTotal, s.storageKind, 1.0)
	key := []byte(istorage.TypeKey(name))
	if data, ok := s.cache.HasGet(nil, key); ok {
		s.metrics.Increase(readCachedTotal, s.storageKind, 1.0)
		return istorage.UnmarshalTypeDoc(data)
	}
	doc, err := s.storage.ReadType(ctx, name)
	if err != nil {
		return nil, err
	}
	if data, err := istorage.MarshalTypeDoc(doc); err == nil {
		s.cache.Set(key, data)
	}
	return doc, nil
}

func (s *cachedTypeStorage) WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error {
	s.metrics.Increase(writeTotal, s.storageKind, 1.0)
	if err := s.storage.WriteType(ctx, name, doc); err != nil {
		// the cached copy may now be stale, drop it
		s.cache.Del([]byte(istorage.TypeKey(name)))
		return err
	}
	if data, err := istorage.MarshalTypeDoc(doc); err == nil {
		s.cache.Set([]byte(istorage.TypeKey(name)), data)
	}
	return nil
}

func (s *cachedTypeStorage) ListTypes(ctx context.Context) ([]string, error) {
	return s.storage.ListTypes(ctx)
}

func (s *cachedTypeStorage) DeleteType(ctx context.Context, name string) error {
	s.metrics.Increase(deleteTotal, s.storageKind, 1.0)
	s.cache.Del([]byte(istorage.TypeKey(name)))
	return s.storage.DeleteType(ctx, name)
}

func (s *cachedTypeStorage) TypeExists(ctx context.Context, name string) (bool, error) {
	return s.storage.TypeExists(ctx, name)
}
