// Package matsolve is a small dense-matrix calculator: determinant, inverse,
// rank, transpose, minors and products over real matrices, plus the input and
// presentation layer needed to drive it from a form or a terminal.
//
// 🚀 What is inside?
//
//	matrix/        — the core: Dense storage, validators, Determinant (cofactor
//	                 expansion), Cofactor, Minor, Inverse (adjugate / det),
//	                 Rank (Gaussian elimination), Mul, Transpose, AllClose
//	report/        — lenient cell parsing, size guard, Build(op) sections,
//	                 text and HTML rendering
//	cmd/matsolve/  — command-line front-end
//	examples/      — a runnable walkthrough
//
// ✨ Guarantees
//
//   - Pure functions: no operation mutates its inputs; results are fresh values.
//   - Typed failures: sentinel errors (matrix.ErrSingular, matrix.ErrNonSquare,
//     matrix.ErrDimensionMismatch, …) matched with errors.Is, and matrix.KindOf
//     to switch on the failure kind.
//   - Reproducible numbers: fixed summation order in every kernel.
//
// Quick example:
//
//	a := matrix.MustFromRows([][]float64{{4, 7}, {2, 6}})
//	inv, err := matrix.Inverse(a) // [[0.6 -0.7] [-0.2 0.4]]
//
// Determinant and Inverse are exponential in the order; front-ends bound the
// input at report.DefaultMaxDim (6×6).
//
//	go install github.com/katalvlaran/matsolve/cmd/matsolve@latest
package matsolve
