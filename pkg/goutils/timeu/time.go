/*
 * Copyright (c) 2026-present TypeStore authors
 */

package timeu

import (
	"sync"
	"time"
)

// ITime is the clock the core packages write timestamps from.
// Production code uses NewITime; tests inject NewMockTime so that
// createdAt/updatedAt values are deterministic.
type ITime interface {
	Now() time.Time
}

func NewITime() ITime {
	return &realTime{}
}

type realTime struct{}

func (t *realTime) Now() time.Time {
	return time.Now()
}

// NewMockTime returns a clock that starts at start and advances by step
// on every Now call. Safe for concurrent use.
func NewMockTime(start time.Time, step time.Duration) ITime {
	return &mockTime{now: start, step: step}
}

type mockTime struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

func (t *mockTime) Now() time.Time {
	t.mu.Lock()
	defer t.mu.Unlock()
	res := t.now
	t.now = t.now.Add(t.step)
	return res
}
