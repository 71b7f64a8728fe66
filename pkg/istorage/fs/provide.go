/*
 * Copyright (c) 2026-present TypeStore authors
 */

// Package fs is the filesystem storage backend. One JSON file per type
// under <root>/types/, the index at <root>/index.json. Every write goes
// to a temp file in the target directory and is renamed over the final
// path; rename is atomic on a single filesystem, so a reader never
// observes a partially written document.
package fs

import (
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
)

type ParamsType struct {
	// RootDir is created by Init if absent.
	RootDir string
}

func Provide(params ParamsType, tm timeu.ITime) istorage.ITypeStorage {
	return &typeStorage{params: params, tm: tm}
}
