/*
 * Copyright (c) 2026-present TypeStore authors
 */

package records

import (
	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
)

// Provide builds the operations over an initialized storage. The
// storage and the clock are explicit dependencies; there is no shared
// process-wide instance, tests construct isolated ones per case.
func Provide(storage istorage.ITypeStorage, tm timeu.ITime) IRecords {
	return &implRecords{storage: storage, tm: tm}
}
