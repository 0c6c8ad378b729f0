// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag impacts behavior and is covered by tests.
//   - Options fields are unexported; public constructors consume ...Option.
package matrix

// ---------- Defaults (single source of truth) ----------

// DefaultFiniteOnly toggles rejection of NaN/±Inf cells on construction and
// SetElement. Off by default: any float64 is a valid cell value.
const DefaultFiniteOnly = false

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	finiteOnly bool // DefaultFiniteOnly
}

// WithFiniteOnly enables strict finite-value validation.
// When enabled, NaN and ±Inf are rejected by NewFromRows, SetElement, Put
// and FromGonum with ErrNaNInf.
//
// Notes:
//   - The flag is fixed at construction and carried by Clone.
func WithFiniteOnly() Option {
	return func(o *Options) { o.finiteOnly = true }
}

// WithAnyFloat disables finite-value validation (the default).
func WithAnyFloat() Option {
	return func(o *Options) { o.finiteOnly = false }
}

// defaultOptions returns Options populated from the Default* constants.
func defaultOptions() Options {
	return Options{finiteOnly: DefaultFiniteOnly}
}

// gatherOptions applies opts in order over the defaults; last writer wins.
// nil entries are skipped.
func gatherOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
