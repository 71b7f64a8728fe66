/*
 * Copyright (c) 2026-present TypeStore authors
 */

package mem

import (
	"testing"
	"time"

	"github.com/typestore/typestore/pkg/goutils/timeu"
	"github.com/typestore/typestore/pkg/istorage"
)

func TestTCK(t *testing.T) {
	istorage.TechnologyCompatibilityKit(t, func(t *testing.T) istorage.ITypeStorage {
		tm := timeu.NewMockTime(time.Date(2026, 8, 28, 10, 0, 0, 0, time.UTC), time.Second)
		return Provide(tm)
	})
}
