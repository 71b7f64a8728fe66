/*
 * Copyright (c) 2026-present TypeStore authors
 */

package schemas

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrInvalidNameError = errors.New("invalid type name")

func ErrInvalidName(msg string, args ...any) error {
	return EnrichError(ErrInvalidNameError, msg, args...)
}

var ErrInvalidFieldError = errors.New("invalid field definition")

func ErrInvalidField(msg string, args ...any) error {
	return EnrichError(ErrInvalidFieldError, msg, args...)
}

var ErrDuplicateFieldError = errors.New("duplicate field")

func ErrDuplicateField(f string) error {
	return EnrichError(ErrDuplicateFieldError, "field «%s»", f)
}

var ErrMissingFieldError = errors.New("missing field")

func ErrMissingField(f string) error {
	return EnrichError(ErrMissingFieldError, "field «%s»", f)
}

var ErrUnknownFieldError = errors.New("unknown field")

func ErrUnknownField(f string) error {
	return EnrichError(ErrUnknownFieldError, "field «%s»", f)
}

var ErrTypeMismatchError = errors.New("type mismatch")

func ErrTypeMismatch(msg string, args ...any) error {
	return EnrichError(ErrTypeMismatchError, msg, args...)
}
