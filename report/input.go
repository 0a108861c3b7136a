// SPDX-License-Identifier: MIT
// Package report - input side: turning loosely typed cells into a *matrix.Dense.
//
// Policy:
//   - A cell is read like a form field: the longest leading decimal literal
//     counts, everything after it is ignored, and anything unreadable is 0.
//   - Rows shorter than the widest row are padded with 0.
//   - The size guard runs first; nothing larger than maxDim×maxDim is materialized.

package report

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/katalvlaran/matsolve/matrix"
)

// DefaultMaxDim is the largest accepted row or column count.
const DefaultMaxDim = 6

// ParseCell returns the numeric value of s or 0.
//
// Leading white space is skipped; the longest prefix of the form
// [+-]digits[.digits][(e|E)[+-]digits] (digits may be empty on one side of
// the point) is converted. No prefix, NaN, ±Inf and negative zero all map to 0.
//
//	ParseCell("2.5")   == 2.5
//	ParseCell(" -3x")  == -3
//	ParseCell("1e3kg") == 1000
//	ParseCell("abc")   == 0
func ParseCell(s string) float64 {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	n := numericPrefix(s)
	if n == 0 {
		return 0
	}
	v, err := strconv.ParseFloat(s[:n], 64)
	if err != nil {
		// Only overflow can get here (the prefix is well formed); ±Inf is not a cell value.
		return 0
	}
	if v == 0 || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}

	return v
}

// numericPrefix returns the byte length of the longest decimal literal at the start of s.
func numericPrefix(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}
	intDigits := countDigits(s[i:])
	i += intDigits
	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = countDigits(s[i+1:])
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}
	if intDigits == 0 && fracDigits == 0 {
		return 0
	}
	// Exponent only counts when it carries at least one digit.
	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if d := countDigits(s[j:]); d > 0 {
			i = j + d
		}
	}

	return i
}

func countDigits(s string) int {
	n := 0
	for n < len(s) && s[n] >= '0' && s[n] <= '9' {
		n++
	}

	return n
}

// CheckSize returns ErrTooLarge when rows or cols exceeds maxDim.
// A non-positive maxDim selects DefaultMaxDim.
func CheckSize(rows, cols, maxDim int) error {
	if maxDim <= 0 {
		maxDim = DefaultMaxDim
	}
	if rows > maxDim || cols > maxDim {
		return fmt.Errorf("%w: %dx%d exceeds %dx%d", ErrTooLarge, rows, cols, maxDim, maxDim)
	}

	return nil
}

// ParseGrid builds a matrix from string cells. The width is that of the
// widest row; missing cells are 0.
//
// Errors:
//   - ErrNoData when there is no row or no column.
//   - ErrTooLarge per CheckSize.
func ParseGrid(cells [][]string, maxDim int) (*matrix.Dense, error) {
	rows := len(cells)
	cols := 0
	for _, row := range cells {
		if len(row) > cols {
			cols = len(row)
		}
	}
	if rows == 0 || cols == 0 {
		return nil, reportErrorf("ParseGrid", ErrNoData)
	}
	if err := CheckSize(rows, cols, maxDim); err != nil {
		return nil, reportErrorf("ParseGrid", err)
	}

	values := make([][]float64, rows)
	for i, row := range cells {
		values[i] = make([]float64, cols)
		for j, cell := range row {
			values[i][j] = ParseCell(cell)
		}
	}
	m, err := matrix.NewFromRows(values)
	if err != nil {
		return nil, reportErrorf("ParseGrid", err)
	}

	return m, nil
}

// isCellSeparator splits a text row into cells.
func isCellSeparator(r rune) bool {
	return r == ',' || r == ';' || unicode.IsSpace(r)
}

// ReadMatrix reads one matrix per line of text from r, for example
//
//	1 2 3
//	4, 5, 6
//
// Cells are separated by white space, commas or semicolons; lines without
// cells are skipped. The size guard is applied while reading, so an
// oversized stream is rejected without being consumed in full. A line
// longer than bufio.MaxScanTokenSize is reported as ErrTooLarge.
func ReadMatrix(r io.Reader, maxDim int) (*matrix.Dense, error) {
	var cells [][]string
	cols := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		fields := strings.FieldsFunc(sc.Text(), isCellSeparator)
		if len(fields) == 0 {
			continue
		}
		cells = append(cells, fields)
		if len(fields) > cols {
			cols = len(fields)
		}
		if err := CheckSize(len(cells), cols, maxDim); err != nil {
			return nil, reportErrorf("ReadMatrix", err)
		}
	}
	if err := sc.Err(); err != nil {
		if errors.Is(err, bufio.ErrTooLong) {
			err = fmt.Errorf("%w: line longer than %d bytes", ErrTooLarge, bufio.MaxScanTokenSize)
		}
		return nil, reportErrorf("ReadMatrix", err)
	}

	m, err := ParseGrid(cells, maxDim)
	if err != nil {
		return nil, reportErrorf("ReadMatrix", err)
	}

	return m, nil
}
