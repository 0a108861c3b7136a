// Package matrix is the numeric engine of matsolve: a small dense-matrix
// arithmetic library for matrices of modest size.
//
// The matrix package provides:
//
//   - Dense, a row-major float64 matrix with bounds-checked At/Set, and the
//     NewFromRows builder that ingests [][]float64 input (rectangularity enforced).
//   - Determinant by cofactor expansion (Sarrus for order 3, Laplace along row 0 above).
//   - Inverse by the adjugate method, failing with ErrSingular on an exactly zero determinant.
//   - Rank by Gaussian elimination with row-swap pivoting (tolerance 1e-10).
//   - Transpose, Mul and Minor.
//   - AllClose, IsIdentity, Sub and MaxAbs for checking results such as A×A⁻¹ ≈ I.
//
// Every operation is a pure function of its inputs: operands are never mutated
// and results are fresh *Dense values. Failures are package sentinels
// (ErrNonSquare, ErrSingular, ErrDimensionMismatch, ...) matchable with
// errors.Is, and KindOf maps any returned error to its ErrorKind.
//
// Determinant and Inverse are exponential in the matrix order; they are the
// right algorithms only for small inputs, and callers are expected to cap the size.
package matrix
