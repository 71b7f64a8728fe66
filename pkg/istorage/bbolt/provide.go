/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package bbolt is an embedded-database storage backend over bbolt.
// Documents and the index live as JSON values in one bucket, keyed the
// same way the other backends key their files and objects. Each bbolt
// transaction is atomic, but the document write and the index update
// are still two separate transactions on purpose: the pair keeps the
// same non-atomic semantics as every other backend.
package bbolt

import (
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
)

type ParamsType struct {
	// DBPath is the bbolt database file, created by Init if absent.
	DBPath string
}

func Provide(params ParamsType, tm timeu.ITime) istorage.ITypeStorage {
	return &typeStorage{params: params, tm: tm}
}
