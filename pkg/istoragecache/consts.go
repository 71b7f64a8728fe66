/*
 * Copyright (c) 2026-present TypeStore authors
 */

package istoragecache

const (
	readTotal       = "ts_storagecache_read_total"
	readCachedTotal = "ts_storagecache_read_cached_total"
	writeTotal      = "ts_storagecache_write_total"
	deleteTotal     = "ts_storagecache_delete_total"
)
