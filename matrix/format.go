// SPDX-License-Identifier: MIT

// Package matrix - grid rendering.
//
// The grid is rows lines of cols tab-separated cells. Stored cells print
// their value, every other cell prints "0". Rendering walks one forward
// cursor over the row-major index while scanning the grid in the same order,
// so it never performs a lookup per cell.

package matrix

import (
	"fmt"
	"iter"
	"strings"
)

// ---------- Formatting literals ----------
const (
	_sep     = ' '  // token separator of the text format
	_cellSep = '\t' // cell separator of the grid
	_rowEnd  = '\n' // row terminator of both formats
	_zero    = "0"  // rendering of unset cells
)

// Compile-time assertion for fmt.Stringer conformance.
var _ fmt.Stringer = (*Sparse[float64])(nil)

// formatValue renders v the way both the grid and the dump do.
func formatValue[T Number](v T) string { return fmt.Sprint(v) }

// scanGrid visits every grid cell in row-major order with its rendered text.
// Implementation:
//   - Stage 1: pull a cursor over All().
//   - Stage 2: for each cell, skip cursor entries sorting before it (only
//     possible for entries outside the grid, see WithUncheckedAccess).
//   - Stage 3: emit the value and advance on an exact match, else emit "0".
//
// The cursor is tested for exhaustion before its key is compared.
// endRow, when non-nil, runs after the last cell of every row (also for
// zero-column grids).
func (m *Sparse[T]) scanGrid(visit func(pos Coordinate, cell string), endRow func(row uint)) {
	next, stop := iter.Pull2(m.All())
	defer stop()

	key, val, ok := next()
	for r := uint(0); r < m.rows; r++ {
		for c := uint(0); c < m.cols; c++ {
			cell := At(c, r)
			for ok && Less(key, cell) {
				key, val, ok = next()
			}
			if ok && key == cell {
				visit(cell, formatValue(val))
				key, val, ok = next()

				continue
			}
			visit(cell, _zero)
		}
		if endRow != nil {
			endRow(r)
		}
	}
}

// Pretty renders the full rows×cols grid: cells separated by tabs, each row
// terminated by a newline. An empty 3×3 matrix renders as
// "0\t0\t0\n0\t0\t0\n0\t0\t0\n".
// Complexity: O(rows*cols + n).
func (m *Sparse[T]) Pretty() string {
	var sb strings.Builder
	m.scanGrid(func(pos Coordinate, cell string) {
		if pos.Col > 0 {
			sb.WriteByte(_cellSep)
		}
		sb.WriteString(cell)
	}, func(uint) { sb.WriteByte(_rowEnd) })

	return sb.String()
}

// Grid returns the rendered cells as rows × cols strings.
// It is the structured form of Pretty, for callers that lay out their own table.
// Rows grow cell by cell; the declared dimensions are never used as
// allocation sizes, so a huge header costs nothing until cells are visited.
func (m *Sparse[T]) Grid() [][]string {
	var grid [][]string
	row := []string{}
	m.scanGrid(func(_ Coordinate, cell string) {
		row = append(row, cell)
	}, func(uint) {
		grid = append(grid, row)
		row = []string{}
	})
	if grid == nil {
		grid = [][]string{}
	}

	return grid
}

// String implements fmt.Stringer; it is Pretty.
func (m *Sparse[T]) String() string { return m.Pretty() }
