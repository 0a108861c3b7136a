// SPDX-License-Identifier: MIT

package report

import (
	"errors"
	"fmt"
)

var (
	// ErrTooLarge indicates an input grid beyond the configured maximum order.
	// Cofactor expansion is exponential, so the guard runs before any parsing of values.
	ErrTooLarge = errors.New("report: matrix too large")

	// ErrNoData indicates that the input contained no cells at all.
	ErrNoData = errors.New("report: no matrix data")

	// ErrUnknownOp is returned by ParseOp for names outside the Op set.
	ErrUnknownOp = errors.New("report: unknown operation")
)

// reportErrorf wraps err with a function tag, preserving it for errors.Is.
func reportErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}
