// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"
)

// Display precision.
const (
	ScalarDecimals = 4 // determinant and other scalar results
	CellDecimals   = 2 // matrix cells
)

// FormatScalar renders v with ScalarDecimals fixed decimals.
func FormatScalar(v float64) string { return fixed(v, ScalarDecimals) }

// FormatCell renders v with CellDecimals fixed decimals.
func FormatCell(v float64) string { return fixed(v, CellDecimals) }

// fixed prints an exact zero without a sign; negative values that round to
// zero keep it ("-0.00").
func fixed(v float64, prec int) string {
	if v == 0 {
		v = 0
	}

	return strconv.FormatFloat(v, 'f', prec, 64)
}

// FormatMatrix renders rows as right-aligned FormatCell columns separated by
// two spaces, one line per row, each line terminated by '\n'.
func FormatMatrix(rows [][]float64) string {
	text := make([][]string, len(rows))
	width := 0
	for i, row := range rows {
		text[i] = make([]string, len(row))
		for j, v := range row {
			s := FormatCell(v)
			text[i][j] = s
			if len(s) > width {
				width = len(s)
			}
		}
	}

	var b strings.Builder
	for _, row := range text {
		for j, s := range row {
			if j > 0 {
				b.WriteString("  ")
			}
			b.WriteString(strings.Repeat(" ", width-len(s)))
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}

	return b.String()
}
