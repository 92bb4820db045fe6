// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for Sparse matrices.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that enforces invariants.
//
// Notes:
//   - Access policy: by default Access applies the same bounds gate as the
//     bulk loader, so both write paths agree on what a valid position is.
//     WithUncheckedAccess restores the permissive accessor that materializes
//     entries outside the declared dimensions.
//   - Logging: the engine is silent unless a logger is supplied; only the
//     bulk loader emits (debug) records, one per discarded entry.
package matrix

import (
	"io"

	"github.com/charmbracelet/log"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultDegree is the B-tree degree used for the coordinate index.
	DefaultDegree = 32

	// MinDegree is the smallest degree the B-tree accepts.
	MinDegree = 2

	// DefaultCheckedAccess makes Access/Set reject out-of-bounds coordinates.
	DefaultCheckedAccess = true
)

const panicDegreeInvalid = "matrix: WithDegree: degree must be >= 2"

// Option mutates internal options. Safe to apply repeatedly (last wins).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	degree        int         // B-tree degree, >= MinDegree
	checkedAccess bool        // bounds gate on Access/Set
	logger        *log.Logger // never nil after gatherOptions
}

// WithDegree sets the B-tree degree of the coordinate index.
// Panics when degree < MinDegree.
// Complexity: O(1).
func WithDegree(degree int) Option {
	if degree < MinDegree {
		panic(panicDegreeInvalid)
	}

	return func(o *Options) { o.degree = degree }
}

// WithCheckedAccess enables the bounds gate on Access and Set (default).
func WithCheckedAccess() Option {
	return func(o *Options) { o.checkedAccess = true }
}

// WithUncheckedAccess lets Access and Set materialize entries outside the
// declared dimensions. Load still discards such entries, and Pretty never
// shows them.
func WithUncheckedAccess() Option {
	return func(o *Options) { o.checkedAccess = false }
}

// WithLogger routes loader diagnostics to l. A nil l keeps the matrix silent.
func WithLogger(l *log.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.logger = l
		}
	}
}

// discardLogger is shared by all matrices built without WithLogger.
var discardLogger = log.New(io.Discard)

// gatherOptions resolves opts over the documented defaults.
// Implementation:
//   - Stage 1: start from Default* constants.
//   - Stage 2: apply each non-nil Option in order (last wins).
//
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{
		degree:        DefaultDegree,
		checkedAccess: DefaultCheckedAccess,
		logger:        discardLogger,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
