// SPDX-License-Identifier: MIT
// Package pbqp: sentinel error set.
// Every value below is a programmer-error sentinel: operations PANIC with an
// error wrapping one of them. Recover and match with errors.Is when a test or
// a supervising caller needs to classify the failure.

package pbqp

import (
	"tlog.app/go/errors"
)

var (
	// ErrBadShape is used when a requested length or shape is not positive.
	ErrBadShape = errors.New("pbqp: invalid shape")

	// ErrInvalidVector marks use of a moved-from or zero-value Vector.
	ErrInvalidVector = errors.New("pbqp: invalid vector")

	// ErrInvalidMatrix marks use of a moved-from or zero-value Matrix.
	ErrInvalidMatrix = errors.New("pbqp: invalid matrix")

	// ErrOutOfRange indicates an element, row or column index outside bounds.
	ErrOutOfRange = errors.New("pbqp: index out of range")

	// ErrDimensionMismatch indicates operands of different length or shape.
	ErrDimensionMismatch = errors.New("pbqp: dimension mismatch")

	// ErrReleased indicates a pool reference was released more times than acquired.
	ErrReleased = errors.New("pbqp: pool reference already released")
)

// contractf panics with err wrapped in "<Type>.<method>" context.
func contractf(err error, format string, args ...interface{}) {
	panic(errors.Wrap(err, format, args...))
}
