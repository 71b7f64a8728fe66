/*
 * Copyright (c) 2026-present TypeStore authors
 */

package bbolt

import (
	"context"
	"os"
	"path/filepath"
	"sync"

	bolt "go.etcd.io/bbolt"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

type typeStorage struct {
	params ParamsType
	tm     timeu.ITime

	mu sync.Mutex
	db *bolt.DB
}

func (s *typeStorage) Init(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(s.params.DBPath), fileMode_DefaultForDir); err != nil {
		return istorage.ErrStorageUnavailable("init", err)
	}
	db, err := bolt.Open(s.params.DBPath, fileMode_DefaultForFile, bolt.DefaultOptions)
	if err != nil {
		return istorage.ErrStorageUnavailable("init", err)
	}
	err = db.Update(func(tx *bolt.Tx) error {
		bucket, err := tx.CreateBucketIfNotExists([]byte(docsBucketName))
		if err != nil {
			return err
		}
		if bucket.Get([]byte(istorage.IndexKey)) != nil {
			return nil
		}
		data, err := istorage.MarshalIndex(schemas.NewIndex(s.tm.Now()))
		if err != nil {
			// notest
			return err
		}
		return bucket.Put([]byte(istorage.IndexKey), data)
	})
	if err != nil {
		db.Close()
		return istorage.ErrStorageUnavailable("init", err)
	}
	s.db = db
	return nil
}

// Close releases the database file. Not part of ITypeStorage; callers
// owning the backend lifecycle use it directly.
func (s *typeStorage) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

func (s *typeStorage) ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		if v := bucket.Get([]byte(istorage.TypeKey(name))); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return nil, istorage.ErrStorageUnavailable("read type", err)
	}
	if data == nil {
		return nil, istorage.ErrTypeNotFound(name)
	}
	return istorage.UnmarshalTypeDoc(data)
}

func (s *typeStorage) WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error {
	data, err := istorage.MarshalTypeDoc(doc)
	if err != nil {
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		return bucket.Put([]byte(istorage.TypeKey(name)), data)
	})
	if err != nil {
		return istorage.ErrStorageUnavailable("write type", err)
	}
	return s.updateIndex(func(idx *schemas.Index) {
		idx.Add(name, s.tm.Now())
	})
}

func (s *typeStorage) ListTypes(ctx context.Context) ([]string, error) {
	idx, err := s.readIndex()
	if err != nil {
		return nil, err
	}
	return idx.Types, nil
}

func (s *typeStorage) DeleteType(ctx context.Context, name string) error {
	key := []byte(istorage.TypeKey(name))
	found := false
	err := s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		if bucket.Get(key) == nil {
			return nil
		}
		found = true
		return bucket.Delete(key)
	})
	if err != nil {
		return istorage.ErrStorageUnavailable("delete type", err)
	}
	if !found {
		return istorage.ErrTypeNotFound(name)
	}
	return s.updateIndex(func(idx *schemas.Index) {
		idx.Remove(name, s.tm.Now())
	})
}

func (s *typeStorage) TypeExists(ctx context.Context, name string) (bool, error) {
	exists := false
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		exists = bucket.Get([]byte(istorage.TypeKey(name))) != nil
		return nil
	})
	if err != nil {
		return false, istorage.ErrStorageUnavailable("type exists", err)
	}
	return exists, nil
}

func (s *typeStorage) readIndex() (*schemas.Index, error) {
	var data []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		if v := bucket.Get([]byte(istorage.IndexKey)); v != nil {
			data = append(data, v...)
		}
		return nil
	})
	if err != nil {
		return nil, istorage.ErrStorageUnavailable("read index", err)
	}
	return istorage.UnmarshalIndex(data)
}

func (s *typeStorage) updateIndex(mutate func(idx *schemas.Index)) error {
	idx, err := s.readIndex()
	if err != nil {
		return err
	}
	mutate(idx)
	data, err := istorage.MarshalIndex(idx)
	if err != nil {
		// notest
		return err
	}
	err = s.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(docsBucketName))
		if bucket == nil {
			return ErrDocsBucketNotFound
		}
		return bucket.Put([]byte(istorage.IndexKey), data)
	})
	if err != nil {
		return istorage.ErrStorageUnavailable("write index", err)
	}
	return nil
}
