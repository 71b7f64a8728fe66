/*
 * Copyright (c) 2026-present TypeStore authors
 */

package istorage

import (
	"errors"

	"github.com/typestore/typestore/pkg/schemas"
)

var ErrTypeNotFoundError = errors.New("type not found")

func ErrTypeNotFound(name string) error {
	return schemas.EnrichError(ErrTypeNotFoundError, "type «%s»", name)
}

// ErrStorageUnavailableError marks infrastructure failures of the
// backing store: permissions, network, quota. Validation and not-found
// conditions are never wrapped in it.
var ErrStorageUnavailableError = errors.New("storage unavailable")

func ErrStorageUnavailable(op string, err error) error {
	return schemas.EnrichError(ErrStorageUnavailableError, "%s: %v", op, err)
}
