/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package mem is the in-memory storage backend, mainly for tests and
// embedding. It stores the same marshaled JSON bytes under the same
// keys as the durable backends, so the codec validation path is
// identical.
package mem

import (
	"context"
	"sync"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

func Provide(tm timeu.ITime) istorage.ITypeStorage {
	return &typeStorage{tm: tm}
}

type typeStorage struct {
	mu   sync.RWMutex
	tm   timeu.ITime
	docs map[string][]byte
}

func (s *typeStorage) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.docs == nil {
		s.docs = map[string][]byte{}
	}
	if _, ok := s.docs[istorage.IndexKey]; !ok {
		data, err := istorage.MarshalIndex(schemas.NewIndex(s.tm.Now()))
		if err != nil {
			// notest
			return err
		}
		s.docs[istorage.IndexKey] = data
	}
	return nil
}

func (s *typeStorage) ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error) {
	s.mu.RLock()
	data, ok := s.docs[istorage.TypeKey(name)]
	s.mu.RUnlock()
	if !ok {
		return nil, istorage.ErrTypeNotFound(name)
	}
	return istorage.UnmarshalTypeDoc(data)
}

func (s *typeStorage) WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error {
	data, err := istorage.MarshalTypeDoc(doc)
	if err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.docs[istorage.TypeKey(name)] = data
	return s.updateIndex(func(idx *schemas.Index) {
		idx.Add(name, s.tm.Now())
	})
}

func (s *typeStorage) ListTypes(ctx context.Context) ([]string, error) {
	s.mu.RLock()
	data := s.docs[istorage.IndexKey]
	s.mu.RUnlock()
	idx, err := istorage.UnmarshalIndex(data)
	if err != nil {
		return nil, err
	}
	return idx.Types, nil
}

func (s *typeStorage) DeleteType(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := istorage.TypeKey(name)
	if _, ok := s.docs[key]; !ok {
		return istorage.ErrTypeNotFound(name)
	}
	delete(s.docs, key)
	return s.updateIndex(func(idx *schemas.Index) {
		idx.Remove(name, s.tm.Now())
	})
}

func (s *typeStorage) TypeExists(ctx context.Context, name string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.docs[istorage.TypeKey(name)]
	return ok, nil
}

// DropDocument removes a persisted document without touching the index,
// simulating the crash window between a document operation and the
// index update. Test helper.
func DropDocument(storage istorage.ITypeStorage, name string) {
	s := storage.(*typeStorage)
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.docs, istorage.TypeKey(name))
}

// caller holds mu
func (s *typeStorage) updateIndex(mutate func(idx *schemas.Index)) error {
	idx, err := istorage.UnmarshalIndex(s.docs[istorage.IndexKey])
	if err != nil {
		return err
	}
	mutate(idx)
	data, err := istorage.MarshalIndex(idx)
	if err != nil {
		// notest
		return err
	}
	s.docs[istorage.IndexKey] = data
	return nil
}
