// SPDX-License-Identifier: MIT
// Package report - Build runs one Op and records what a front-end shows.
//
// Section layout per Op (titles are fixed strings, see the Title* constants):
//   - solve:     note, input, determinant (square only; a failure is shown inline), rank.
//   - det:       input, determinant.
//   - transpose: input, transpose.
//   - inverse:   input, inverse, A×A⁻¹, its max deviation from I, verdict.
//   - rank:      input, rank.
//   - multiply:  A, B, A×B.
//
// Any other failure replaces the whole layout with a single error section.

package report

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/matsolve/matrix"
)

// IdentityTolerance is the per-entry tolerance of the A×A⁻¹ ≈ I check.
const IdentityTolerance = 1e-9

// Section titles.
const (
	TitleProcessed      = "Matrix processed successfully"
	TitleInput          = "Input matrix:"
	TitleTransposed     = "Transposed matrix:"
	TitleInverse        = "Inverse matrix:"
	TitleCheck          = "Check (A × A⁻¹):"
	TitleA              = "Matrix A:"
	TitleB              = "Matrix B:"
	TitleProduct        = "Product (A × B):"
	TitleDeterminant    = "Determinant:"
	TitleDetOfMatrix    = "Matrix determinant:"
	TitleRank           = "Matrix rank:"
	TitleError          = "Error"
	TitleDetFailed      = "Determinant failed"
	TitleDeviation      = "Max |A × A⁻¹ − I|:"
	TitleCheckIdentity  = "A × A⁻¹ is the identity"
	TitleCheckDeviation = "A × A⁻¹ deviates from the identity"
)

// SectionKind tells renderers how to present a Section.
type SectionKind int

const (
	// SectionNote is a plain success message in Title.
	SectionNote SectionKind = iota
	// SectionMatrix is a titled grid in Rows.
	SectionMatrix
	// SectionValue is a labelled scalar: Title then Text.
	SectionValue
	// SectionError is a failure: Title then the error text in Text.
	SectionError
)

// Section is one titled block of output.
type Section struct {
	Kind  SectionKind
	Title string
	Text  string
	Rows  [][]float64
}

// Report is the complete outcome of one Build call.
type Report struct {
	Op       Op
	Sections []Section
	// Identity is set by OpInverse when A×A⁻¹ is within IdentityTolerance of I.
	Identity bool
	// Err is the core failure that aborted the Op, if any. An inline
	// determinant failure under OpSolve does not set it.
	Err error
}

// Failed reports whether the Op was aborted.
func (r *Report) Failed() bool { return r.Err != nil }

func (r *Report) note(title string) {
	r.Sections = append(r.Sections, Section{Kind: SectionNote, Title: title})
}

func (r *Report) grid(title string, m matrix.Matrix) error {
	rows, err := rowsOf(m)
	if err != nil {
		return err
	}
	r.Sections = append(r.Sections, Section{Kind: SectionMatrix, Title: title, Rows: rows})

	return nil
}

func (r *Report) value(title, text string) {
	r.Sections = append(r.Sections, Section{Kind: SectionValue, Title: title, Text: text})
}

func (r *Report) inlineError(title string, err error) {
	r.Sections = append(r.Sections, Section{Kind: SectionError, Title: title, Text: err.Error()})
}

// fail discards collected sections and keeps only the error.
func (r *Report) fail(err error) *Report {
	r.Err = err
	r.Identity = false
	r.Sections = []Section{{Kind: SectionError, Title: TitleError, Text: err.Error()}}

	return r
}

// rowsOf copies any Matrix into plain rows.
func rowsOf(m matrix.Matrix) ([][]float64, error) {
	if err := matrix.ValidateNotNil(m); err != nil {
		return nil, err
	}
	if d, ok := m.(*matrix.Dense); ok {
		return d.ToRows(), nil
	}
	out := make([][]float64, m.Rows())
	var err error
	for i := range out {
		out[i] = make([]float64, m.Cols())
		for j := range out[i] {
			if out[i][j], err = m.At(i, j); err != nil {
				return nil, err
			}
		}
	}

	return out, nil
}

// Build runs op over a (and b for OpMultiply) and collects the sections a
// front-end displays. opts are forwarded to matrix.Rank.
// Build never panics on bad input and never returns nil.
func Build(op Op, a, b matrix.Matrix, opts ...matrix.Option) *Report {
	r := &Report{Op: op}
	var err error
	switch op {
	case OpSolve:
		err = r.solve(a, opts)
	case OpDeterminant:
		err = r.determinant(a)
	case OpTranspose:
		err = r.transpose(a)
	case OpInverse:
		err = r.inverse(a)
	case OpRank:
		err = r.rank(a, opts)
	case OpMultiply:
		err = r.multiply(a, b)
	default:
		err = fmt.Errorf("%w: %d", ErrUnknownOp, int(op))
	}
	if err != nil {
		return r.fail(err)
	}

	return r
}

func (r *Report) solve(a matrix.Matrix, opts []matrix.Option) error {
	if err := matrix.ValidateNotNil(a); err != nil {
		return err
	}
	r.note(TitleProcessed)
	if err := r.grid(TitleInput, a); err != nil {
		return err
	}
	if a.Rows() == a.Cols() {
		det, err := matrix.Determinant(a)
		if err != nil {
			r.inlineError(TitleDetFailed, err)
		} else {
			r.value(TitleDeterminant, FormatScalar(det))
		}
	}
	rank, err := matrix.Rank(a, opts...)
	if err != nil {
		return err
	}
	r.value(TitleRank, strconv.Itoa(rank))

	return nil
}

func (r *Report) determinant(a matrix.Matrix) error {
	det, err := matrix.Determinant(a)
	if err != nil {
		return err
	}
	if err = r.grid(TitleInput, a); err != nil {
		return err
	}
	r.value(TitleDetOfMatrix, FormatScalar(det))

	return nil
}

func (r *Report) transpose(a matrix.Matrix) error {
	t, err := matrix.Transpose(a)
	if err != nil {
		return err
	}
	if err = r.grid(TitleInput, a); err != nil {
		return err
	}

	return r.grid(TitleTransposed, t)
}

func (r *Report) inverse(a matrix.Matrix) error {
	inv, err := matrix.Inverse(a)
	if err != nil {
		return err
	}
	check, err := matrix.Mul(a, inv)
	if err != nil {
		return err
	}
	if r.Identity, err = matrix.IsIdentity(check, IdentityTolerance); err != nil {
		return err
	}
	deviation, err := identityDeviation(check)
	if err != nil {
		return err
	}

	if err = r.grid(TitleInput, a); err != nil {
		return err
	}
	if err = r.grid(TitleInverse, inv); err != nil {
		return err
	}
	if err = r.grid(TitleCheck, check); err != nil {
		return err
	}
	r.value(TitleDeviation, strconv.FormatFloat(deviation, 'e', 2, 64))
	if r.Identity {
		r.note(TitleCheckIdentity)
	} else {
		r.note(TitleCheckDeviation)
	}

	return nil
}

// identityDeviation returns max |check − I|.
func identityDeviation(check matrix.Matrix) (float64, error) {
	I, err := matrix.IdentityLike(check)
	if err != nil {
		return 0, err
	}
	diff, err := matrix.Sub(check, I)
	if err != nil {
		return 0, err
	}

	return matrix.MaxAbs(diff)
}

func (r *Report) rank(a matrix.Matrix, opts []matrix.Option) error {
	rank, err := matrix.Rank(a, opts...)
	if err != nil {
		return err
	}
	if err = r.grid(TitleInput, a); err != nil {
		return err
	}
	r.value(TitleRank, strconv.Itoa(rank))

	return nil
}

func (r *Report) multiply(a, b matrix.Matrix) error {
	p, err := matrix.Mul(a, b)
	if err != nil {
		return err
	}
	if err = r.grid(TitleA, a); err != nil {
		return err
	}
	if err = r.grid(TitleB, b); err != nil {
		return err
	}

	return r.grid(TitleProduct, p)
}
