// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. Every operation returns these sentinels (possibly wrapped with call
// context) and tests check them via errors.Is. No operation panics on
// user-triggered error conditions; panics are reserved for nonsensical
// Option values (programmer error).

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Detection sites wrap with call context
// ("Sparse.Access(3,1): matrix: index out of range"); callers still match
// with errors.Is.

var (
	// ErrOutOfRange indicates that a coordinate lies outside the declared
	// dimensions (col >= Cols() or row >= Rows()).
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrParse indicates malformed or insufficient tokens in the text format.
	// The concrete cause (strconv error, io.ErrUnexpectedEOF) is wrapped too.
	ErrParse = errors.New("matrix: parse error")

	// ErrNilMatrix indicates that a nil *Sparse was used as receiver or argument.
	ErrNilMatrix = errors.New("matrix: nil receiver")
)

// sparseErrorf wraps err with the method name and the offending coordinate.
func sparseErrorf(method string, col, row uint, err error) error {
	return fmt.Errorf("Sparse.%s(%d,%d): %w", method, col, row, err)
}

// parseErrorf reports a parse failure at the given 1-based token position.
// Both ErrParse and cause remain reachable through errors.Is.
func parseErrorf(token int, what string, cause error) error {
	return fmt.Errorf("%w: token %d (%s): %w", ErrParse, token, what, cause)
}
