/*
 * Copyright (c) 2026-present TypeStore authors
 */

package bbolt

import "io/fs"

const docsBucketName = "docs"

const (
	fileMode_DefaultForDir  fs.FileMode = 0777 // rwxrwxrwx
	fileMode_DefaultForFile fs.FileMode = 0666 // rw_rw_rw_
)
