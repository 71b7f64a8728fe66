/*
 * Copyright (c) 2026-present TypeStore authors
 */

package fs

import (
	"context"
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/typestore/typestore/pkg/goutils/logger"
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
	"github.com/typestore/typestore/pkg/schemas"
)

type typeStorage struct {
	params ParamsType
	tm     timeu.ITime
}

func (s *typeStorage) Init(ctx context.Context) error {
	typesDir := filepath.Join(s.params.RootDir, "types")
	if err := os.MkdirAll(typesDir, FileMode_DefaultForDir); err != nil {
		return istorage.ErrStorageUnavailable("init", err)
	}
	indexPath := s.indexPath()
	if _, err := os.Stat(indexPath); err == nil {
		return nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return istorage.ErrStorageUnavailable("init", err)
	}
	data, err := istorage.MarshalIndex(schemas.NewIndex(s.tm.Now()))
	if err != nil {
		// notest
		return err
	}
	if err := s.writeAtomic(indexPath, data); err != nil {
		return err
	}
	if logger.IsVerbose() {
		logger.Verbose("fs storage initialized at", s.params.RootDir)
	}
	return nil
}

func (s *typeStorage) ReadType(ctx context.Context, name string) (*schemas.TypeDoc, error) {
	data, err := os.ReadFile(s.typePath(name))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, istorage.ErrTypeNotFound(name)
	}
	if err != nil {
		return nil, istorage.ErrStorageUnavailable("read type", err)
	}
	return istorage.UnmarshalTypeDoc(data)
}

func (s *typeStorage) WriteType(ctx context.Context, name string, doc *schemas.TypeDoc) error {
	data, err := istorage.MarshalTypeDoc(doc)
	if err != nil {
		return err
	}
	if err := s.writeAtomic(s.typePath(name), data); err != nil {
		return err
	}
	// separate persistence call: a crash here leaves a document the
	// index does not list yet
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
	path := s.typePath(name)
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		return istorage.ErrTypeNotFound(name)
	} else if err != nil {
		return istorage.ErrStorageUnavailable("delete type", err)
	}
	if err := os.Remove(path); err != nil {
		return istorage.ErrStorageUnavailable("delete type", err)
	}
	return s.updateIndex(func(idx *schemas.Index) {
		idx.Remove(name, s.tm.Now())
	})
}

func (s *typeStorage) TypeExists(ctx context.Context, name string) (bool, error) {
	if _, err := os.Stat(s.typePath(name)); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, istorage.ErrStorageUnavailable("type exists", err)
	}
	return true, nil
}

func (s *typeStorage) typePath(name string) string {
	return filepath.Join(s.params.RootDir, filepath.FromSlash(istorage.TypeKey(name)))
}

func (s *typeStorage) indexPath() string {
	return filepath.Join(s.params.RootDir, istorage.IndexKey)
}

func (s *typeStorage) readIndex() (*schemas.Index, error) {
	data, err := os.ReadFile(s.indexPath())
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
	return s.writeAtomic(s.indexPath(), data)
}

// writeAtomic writes data to a temp file next to path and renames it
// over path. The temp file lives in the same directory so the rename
// never crosses filesystems.
func (s *typeStorage) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return istorage.ErrStorageUnavailable("write", err)
	}
	tmpName := tmp.Name()
	if _, err = tmp.Write(data); err == nil {
		err = tmp.Chmod(FileMode_DefaultForFile)
	}
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err == nil {
		err = os.Rename(tmpName, path)
	}
	if err != nil {
		os.Remove(tmpName)
		return istorage.ErrStorageUnavailable("write", err)
	}
	return nil
}
