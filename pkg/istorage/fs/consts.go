/*
 * Copyright (c) 2026-present TypeStore authors
 */

package fs

import "io/fs"

const (
	FileMode_DefaultForDir  fs.FileMode = 0777 // rwxrwxrwx
	FileMode_DefaultForFile fs.FileMode = 0666 // rw_rw_rw_
)

const tempFilePattern = ".tmp-*"
