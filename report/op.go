// SPDX-License-Identifier: MIT

package report

import (
	"strconv"
	"strings"
)

// Op selects what Build computes.
type Op int

const (
	// OpSolve shows the input, its determinant when square, and its rank.
	OpSolve Op = iota
	// OpDeterminant shows the input and its determinant.
	OpDeterminant
	// OpTranspose shows the input and its transpose.
	OpTranspose
	// OpInverse shows the input, its inverse and the A×A⁻¹ check.
	OpInverse
	// OpRank shows the input and its rank.
	OpRank
	// OpMultiply shows A, B and A×B.
	OpMultiply
)

var opNames = [...]string{
	OpSolve:       "solve",
	OpDeterminant: "det",
	OpTranspose:   "transpose",
	OpInverse:     "inverse",
	OpRank:        "rank",
	OpMultiply:    "multiply",
}

// aliases accepted by ParseOp in addition to the canonical names.
var opAliases = map[string]Op{
	"determinant": OpDeterminant,
	"inv":         OpInverse,
	"mul":         OpMultiply,
	"product":     OpMultiply,
}

// String returns the canonical name used on the command line.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opNames) {
		return "unknown"
	}

	return opNames[o]
}

// NeedsSecond reports whether the Op takes a second operand.
func (o Op) NeedsSecond() bool { return o == OpMultiply }

// ParseOp maps a case-insensitive name or alias to an Op.
func ParseOp(name string) (Op, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for i, n := range opNames {
		if n == key {
			return Op(i), nil
		}
	}
	if op, ok := opAliases[key]; ok {
		return op, nil
	}

	return OpSolve, reportErrorf("ParseOp "+strconv.Quote(name), ErrUnknownOp)
}
