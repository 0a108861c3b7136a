// SPDX-License-Identifier: MIT

// Package report turns user-entered grids into matrices, runs one solver
// operation over them and renders the outcome as text or HTML.
//
// The package sits between a front-end (the matsolve CLI, or any form-style UI)
// and the matrix core:
//
//   - input.go  – lenient cell parsing, grid/stream readers, the size guard
//   - op.go     – the Op enumeration and its parser
//   - report.go – Build: run an Op and collect titled sections
//   - format.go – fixed-precision scalar and cell formatting
//   - render.go – WriteText and WriteHTML (html/template)
//
// Failures from the core are never swallowed: Build stores the error in
// Report.Err and emits an error section carrying err.Error() unmodified, so
// callers may still classify it with matrix.KindOf.
//
// The package never logs.
package report
