/*
 * Copyright (c) 2026-present TypeStore authors
 */

package records

import (
	"errors"

	"github.com/typestore/typestore/pkg/schemas"
)

var ErrTypeAlreadyExistsError = errors.New("type already exists")

func ErrTypeAlreadyExists(name string) error {
	return schemas.EnrichError(ErrTypeAlreadyExistsError, "type «%s»", name)
}
