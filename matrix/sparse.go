// SPDX-License-Identifier: MIT

// Package matrix - Sparse storage (row-major ordered index) & accessors.
//
// Purpose:
//   - Store only materialized cells of a fixed cols×rows grid.
//   - Keep entries ordered row-major so iteration, Pretty and the text dump
//     all walk the same sequence without sorting.
//   - Hand out stable *T references from Access; entries are heap cells owned
//     by the index, so later inserts never move them.
//
// Complexity quicksheet:
//   - New: O(1); Access/Get/Set: O(log n); CountNonZero: O(1);
//     All: O(n); Clone: O(n); Pretty: O(rows*cols + n).

package matrix

import (
	"iter"

	"github.com/google/btree"
)

const (
	ctxAccess = "Access" // method tag used in error wrappers
	ctxGet    = "Get"    // method tag used in error wrappers
	ctxSet    = "Set"    // method tag used in error wrappers
)

// entry is one materialized cell. The index stores *entry so that &val
// stays valid for the life of the matrix.
type entry[T Number] struct {
	pos Coordinate
	val T
}

func lessEntry[T Number](a, b *entry[T]) bool { return Less(a.pos, b.pos) }

// Sparse is a cols×rows matrix that stores only materialized cells.
//   - cols, rows are the declared dimensions; Load may replace them.
//   - index maps Coordinate → value in row-major order.
//
// A Sparse value is owned by a single goroutine; it carries no locks.
type Sparse[T Number] struct {
	cols, rows uint
	index      *btree.BTreeG[*entry[T]]
	opts       Options
}

// New creates an empty cols×rows matrix.
// Zero dimensions are legal and yield a matrix with no valid positions.
//
// Inputs:
//   - cols: declared column count
//   - rows: declared row count
//   - opts: Option setters (degree, access policy, logger)
//
// Complexity:
//   - Time O(1), Space O(1); storage grows with materialized entries only.
func New[T Number](cols, rows uint, opts ...Option) *Sparse[T] {
	o := gatherOptions(opts...)

	return &Sparse[T]{
		cols:  cols,
		rows:  rows,
		index: btree.NewG[*entry[T]](o.degree, lessEntry[T]),
		opts:  o,
	}
}

// Cols returns the declared column count.
func (m *Sparse[T]) Cols() uint { return m.cols }

// Rows returns the declared row count.
func (m *Sparse[T]) Rows() uint { return m.rows }

// IsOutOfBounds reports whether pos.Col >= Cols() or pos.Row >= Rows().
// This is the single gate used by the accessor and the bulk loader.
// Complexity: O(1).
func (m *Sparse[T]) IsOutOfBounds(pos Coordinate) bool {
	return pos.Col >= m.cols || pos.Row >= m.rows
}

// lookup returns the stored entry at pos, or nil.
func (m *Sparse[T]) lookup(pos Coordinate) *entry[T] {
	e, ok := m.index.Get(&entry[T]{pos: pos})
	if !ok {
		return nil
	}

	return e
}

// Access returns a reference to the element at (col,row), materializing a
// zero entry on a miss.
// MAIN DESCRIPTION:
//   - Read/write accessor: *p reads the value, *p = v writes it.
//
// Implementation:
//   - Stage 1: bounds gate (skipped under WithUncheckedAccess).
//   - Stage 2: hit → return &entry.val; nothing is allocated or reordered.
//   - Stage 3: miss → insert a zero entry, return its reference.
//
// Behavior highlights:
//   - CountNonZero grows by exactly one on a miss and never on a hit.
//   - The reference stays valid across later inserts and for the life of m,
//     except that Load discards all previous entries.
//
// Errors:
//   - ErrOutOfRange (wrapped) when the bounds gate rejects (col,row).
//
// Complexity:
//   - Time O(log n), Space O(1) amortized.
func (m *Sparse[T]) Access(col, row uint) (*T, error) {
	pos := At(col, row)
	if m.opts.checkedAccess && m.IsOutOfBounds(pos) {
		return nil, sparseErrorf(ctxAccess, col, row, ErrOutOfRange)
	}
	if e := m.lookup(pos); e != nil {
		return &e.val, nil
	}

	e := &entry[T]{pos: pos}
	m.index.ReplaceOrInsert(e)

	return &e.val, nil
}

// Get returns the element at (col,row) without materializing anything.
// Unset cells read as zero.
func (m *Sparse[T]) Get(col, row uint) (T, error) {
	var zero T
	pos := At(col, row)
	if m.opts.checkedAccess && m.IsOutOfBounds(pos) {
		return zero, sparseErrorf(ctxGet, col, row, ErrOutOfRange)
	}
	if e := m.lookup(pos); e != nil {
		return e.val, nil
	}

	return zero, nil
}

// Set stores v at (col,row). Storing zero still materializes the entry.
func (m *Sparse[T]) Set(col, row uint, v T) error {
	p, err := m.Access(col, row)
	if err != nil {
		return sparseErrorf(ctxSet, col, row, err)
	}
	*p = v

	return nil
}

// Has reports whether (col,row) holds a materialized entry.
func (m *Sparse[T]) Has(col, row uint) bool {
	return m.lookup(At(col, row)) != nil
}

// CountNonZero returns the number of materialized entries. Explicit zeros
// created by Access or Set are counted.
// Complexity: O(1).
func (m *Sparse[T]) CountNonZero() int { return m.index.Len() }

// All yields every materialized entry in row-major order.
// The matrix must not be mutated while the sequence is being consumed.
func (m *Sparse[T]) All() iter.Seq2[Coordinate, T] {
	return func(yield func(Coordinate, T) bool) {
		m.index.Ascend(func(e *entry[T]) bool {
			return yield(e.pos, e.val)
		})
	}
}

// Clone returns a deep copy sharing no entries with m.
// Complexity: O(n).
func (m *Sparse[T]) Clone() *Sparse[T] {
	c := &Sparse[T]{
		cols:  m.cols,
		rows:  m.rows,
		index: btree.NewG[*entry[T]](m.opts.degree, lessEntry[T]),
		opts:  m.opts,
	}
	m.index.Ascend(func(e *entry[T]) bool {
		c.index.ReplaceOrInsert(&entry[T]{pos: e.pos, val: e.val})

		return true
	})

	return c
}

// Equal reports whether m and other have the same dimensions and the same
// materialized entries. Options are not compared.
// Values compare with ==, so a matrix holding a NaN entry is never Equal to
// anything, itself included.
func (m *Sparse[T]) Equal(other *Sparse[T]) bool {
	if m == nil || other == nil {
		return m == other
	}
	if m.cols != other.cols || m.rows != other.rows || m.index.Len() != other.index.Len() {
		return false
	}
	equal := true
	m.index.Ascend(func(e *entry[T]) bool {
		o := other.lookup(e.pos)
		equal = o != nil && o.val == e.val

		return equal
	})

	return equal
}

// reset drops every entry and adopts new dimensions.
func (m *Sparse[T]) reset(cols, rows uint) {
	m.index.Clear(false)
	m.cols, m.rows = cols, rows
}
