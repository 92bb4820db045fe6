// SPDX-License-Identifier: MIT

package matrix

// Test bridge: exposes the resolved Options to matrix_test without widening
// the production API. Being a _test.go file in package matrix, it is compiled
// only with the tests.

// OptionsSnapshot is a read-only view of the internal Options.
type OptionsSnapshot struct {
	Degree        int
	CheckedAccess bool
	HasLogger     bool // false when the shared discard logger is in use
}

// GatherOptionsSnapshot_TestOnly resolves opts and snapshots the result.
func GatherOptionsSnapshot_TestOnly(opts ...Option) OptionsSnapshot {
	o := gatherOptions(opts...)

	return OptionsSnapshot{
		Degree:        o.degree,
		CheckedAccess: o.checkedAccess,
		HasLogger:     o.logger != discardLogger,
	}
}

// PanicDegreeInvalid_TestOnly avoids magic strings in tests.
const PanicDegreeInvalid_TestOnly = panicDegreeInvalid
