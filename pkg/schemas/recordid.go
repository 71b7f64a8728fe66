/*
 * Copyright (c) 2026-present TypeStore authors
 */

package schemas

import (
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// NewRecordID produces a record identifier from the base-36 unix-milli
// timestamp plus a random uuid-derived suffix. Uniqueness is
// probabilistic, not cryptographic: a collision within one type would
// need two ids generated in the same millisecond with the same 12 hex
// chars of randomness, which is never observed at the intended record
// volumes. Ids are never reused.
func NewRecordID(now time.Time) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	return strconv.FormatInt(now.UnixMilli(), 36) + "-" + suffix
}
