// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package plus the ErrorKind classification consumed by presentation layers.
// All kernels MUST return these sentinels and tests MUST check them via errors.Is.
// No kernel should panic on user-triggered error conditions.

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Kernels wrap these sentinels with an operation tag
// via matrixErrorf ("Inverse: matrix: singular matrix"); callers still match
// them with errors.Is.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil -> shape/empty -> square -> dimension mismatch -> singular.

var (
	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = errors.New("matrix: nil matrix")

	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrRagged signals that row slices passed to a builder differ in length.
	ErrRagged = errors.New("matrix: rows have different lengths")

	// ErrBadShape is returned when the shape is invalid for the requested operation,
	// e.g. extracting a minor from a matrix with fewer than two rows or columns.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrEmpty signals that an operation needing at least one entry got a 0×0 matrix.
	ErrEmpty = errors.New("matrix: matrix is empty")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	// Raised by Determinant, Cofactor and Inverse.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. Mul where a.Cols != b.Rows, or AllClose on different shapes.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by Inverse when the determinant is exactly zero.
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required by the numeric policy (ingestion, Set, tolerances).
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")
)

// ErrorKind tags a failure crossing the core boundary with its variant, so a
// caller can switch on the kind instead of string-matching messages.
type ErrorKind int

const (
	// KindNone means no error.
	KindNone ErrorKind = iota
	// KindDimension: a square matrix was required (ErrNonSquare, ErrEmpty).
	KindDimension
	// KindSingular: the matrix has no inverse (ErrSingular).
	KindSingular
	// KindDimensionMismatch: operand shapes are incompatible (ErrDimensionMismatch).
	KindDimensionMismatch
	// KindInput: malformed input (nil, ragged, non-finite, invalid dimensions).
	KindInput
	// KindInternal: contract violations by the caller (index out of range, bad minor shape)
	// and anything not produced by this package.
	KindInternal
)

// String returns a stable lower-case name for the kind.
func (k ErrorKind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindDimension:
		return "dimension"
	case KindSingular:
		return "singular"
	case KindDimensionMismatch:
		return "dimension-mismatch"
	case KindInput:
		return "input"
	default:
		return "internal"
	}
}

// KindOf classifies err by the sentinel it wraps.
// Complexity: O(depth of the wrap chain).
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return KindNone
	case errors.Is(err, ErrNonSquare), errors.Is(err, ErrEmpty):
		return KindDimension
	case errors.Is(err, ErrSingular):
		return KindSingular
	case errors.Is(err, ErrDimensionMismatch):
		return KindDimensionMismatch
	case errors.Is(err, ErrNilMatrix),
		errors.Is(err, ErrRagged),
		errors.Is(err, ErrNaNInf),
		errors.Is(err, ErrInvalidDimensions):
		return KindInput
	default:
		return KindInternal
	}
}
