// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for numeric policy. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultRankTolerance is the pivot threshold used by Rank: entries with
	// |v| <= DefaultRankTolerance are treated as numerically zero.
	DefaultRankTolerance = 1e-10

	// DefaultValidateNaNInf toggles strict finite-value validation on ingestion and Set.
	DefaultValidateNaNInf = true
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicRankToleranceInvalid = "matrix: WithRankTolerance: eps must be finite, non-negative"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
// Constructors MUST panic only on nonsensical values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	rankTol        float64 // >= 0; DefaultRankTolerance
	validateNaNInf bool    // DefaultValidateNaNInf
}

// ---------- Constructors (WithX) ----------

// WithRankTolerance sets the pivot threshold used by Rank.
// Panics when eps is NaN, ±Inf or negative.
//
// Notes:
//   - The default (1e-10) is the documented behavior; override only when the
//     caller knows its data scale.
func WithRankTolerance(eps float64) Option {
	if math.IsNaN(eps) || math.IsInf(eps, 0) || eps < 0 {
		panic(panicRankToleranceInvalid)
	}

	return func(o *Options) { o.rankTol = eps }
}

// WithValidateNaNInf makes builders reject NaN/±Inf entries (the default).
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf lets builders accept NaN/±Inf entries as-is.
// Kernels never crash on such values; results simply propagate them.
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// NewMatrixOptions resolves opts over the defaults. Useful for inspection in tests.
func NewMatrixOptions(opts ...Option) Options { return gatherOptions(opts...) }

// RankTolerance reports the effective pivot threshold.
func (o Options) RankTolerance() float64 { return o.rankTol }

// ValidateNaNInf reports whether builders reject non-finite values.
func (o Options) ValidateNaNInf() bool { return o.validateNaNInf }

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{
		rankTol:        DefaultRankTolerance,
		validateNaNInf: DefaultValidateNaNInf,
	}
}

// gatherOptions applies user setters in order over the defaults; last write wins.
// nil setters are skipped.
func gatherOptions(user ...Option) Options {
	o := defaultOptions()
	for _, fn := range user {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
