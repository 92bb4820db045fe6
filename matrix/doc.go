// Package matrix offers a generic sparse two-dimensional matrix.
//
// The matrix package provides:
//
//   - Coordinate, a (Col, Row) cell address ordered row-major.
//   - Sparse[T], a fixed cols×rows grid that stores only materialized cells
//     in a B-tree keyed by Coordinate.
//   - A read/write accessor (Access) that materializes a zero on a miss,
//     plus a non-mutating Get and a mutating Set.
//   - A tab-separated grid renderer (Pretty, Grid).
//   - A line-oriented text codec (Load/ReadFrom, WriteTo) whose dump is
//     exactly what Load consumes.
//
// Bounds: Access, Get and Set reject coordinates outside the declared shape
// with ErrOutOfRange by default, the same gate Load applies when it silently
// discards entries. WithUncheckedAccess lifts the gate for the accessor only.
//
// A Sparse value is not safe for concurrent use.
package matrix
