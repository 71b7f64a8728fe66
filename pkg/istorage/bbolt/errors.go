/*
 * Copyright (c) 2026-present TypeStore authors
 */

package bbolt

import "errors"

var ErrDocsBucketNotFound = errors.New("docs bucket not found")
